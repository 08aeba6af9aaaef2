// pkg/catalog/doc.go
package catalog

/*
Package catalog is the table of what the SDK ships per platform.

It holds:
  - The ordered logical libraries each platform links (codec, text shaping,
    layout, decoders, core, umbrella)
  - The naming rule and directory of each platform
  - The architectures shipped and their directory buckets
  - Audio capability, tracked per platform rather than derived
  - System libraries, frameworks and host engine modules the SDK needs

Adding a platform is adding an entry; Validate must keep passing.
*/
