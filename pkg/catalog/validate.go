// pkg/catalog/validate.go
package catalog

import (
	"errors"
	"fmt"

	"github.com/arc-language/rivelink/pkg/target"
)

// ErrInconsistent is wrapped by every error Validate returns
var ErrInconsistent = errors.New("catalog inconsistency")

// Validate checks the table invariants. A failure is a programming error.
func Validate() error {
	return validate(entries)
}

func validate(table map[target.Platform]Entry) error {
	var errs []error
	for _, p := range append([]target.Platform{target.Unsupported}, target.Platforms...) {
		e, ok := table[p]
		if !ok {
			continue
		}
		if err := validateEntry(p, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func validateEntry(p target.Platform, e Entry) error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s: %s", ErrInconsistent, p, fmt.Sprintf(format, args...))
	}

	switch {
	case p == target.Unsupported:
		return fail("unsupported platform must not have an entry")
	case e.Platform != p:
		return fail("entry is keyed under %s", e.Platform)
	case e.Dir == "":
		return fail("missing library directory")
	case e.Rule.Extension == "":
		return fail("missing naming rule")
	case len(e.Archs) == 0:
		return fail("no architectures")
	case len(e.Libraries) == 0:
		return fail("no libraries")
	case e.ExternalAudio && !e.Audio:
		return fail("external audio engine without audio support")
	}

	seen := make(map[string]bool, len(e.Libraries))
	last := KindUnknown
	for _, r := range e.Libraries {
		if !Known(r.Name) {
			return fail("unknown library %q", r.Name)
		}
		if seen[r.Name] {
			return fail("library %q listed twice", r.Name)
		}
		seen[r.Name] = true
		k := r.Kind()
		if r.Codec != (k == KindCodec) {
			return fail("library %q is %s but codec bucket is %t", r.Name, k, r.Codec)
		}
		if k < last {
			return fail("library %q (%s) linked after a %s library", r.Name, k, last)
		}
		last = k
	}

	buckets := make(map[string]target.Architecture)
	for _, a := range e.SortedArchs() {
		b := e.Archs[a]
		if b == "" {
			continue
		}
		if other, dup := buckets[b]; dup {
			return fail("architectures %s and %s share bucket %q", other, a, b)
		}
		buckets[b] = a
	}
	if len(buckets) != 0 && len(buckets) != len(e.Archs) {
		return fail("mixed flat and bucketed architectures")
	}

	return nil
}
