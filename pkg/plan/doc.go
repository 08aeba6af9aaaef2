// Package plan assembles the BuildPlan of one target: the SDK include
// directory, the static archives in link order, the system libraries and
// frameworks, the preprocessor definitions and the optional manifest
// fragment.
//
// Resolution pipeline:
//  1. Look up the platform entry in the catalog; missing → unsupported plan
//  2. Compute the library directory; unshipped architecture → unsupported plan
//  3. Render every requirement with the platform naming rule, in catalog order
//  4. Derive feature definitions (plus the Mac architecture marker)
//  5. Bind the manifest fragment on platforms that deploy one
//  6. Check library uniqueness
package plan
