// pkg/features/features.go
package features

import (
	"strconv"

	"github.com/arc-language/rivelink/pkg/catalog"
	"github.com/arc-language/rivelink/pkg/target"
)

// Preprocessor symbols visible to every unit that depends on the SDK
const (
	WithRive            = "WITH_RIVE"
	WithRiveAudio       = "WITH_RIVE_AUDIO"
	ExternalAudioEngine = "EXTERNAL_RIVE_AUDIO_ENGINE"
	MacArm64            = "RIVE_MAC_ARM64"
	MacIntel            = "RIVE_MAC_INTEL"
)

// Definition is one preprocessor definition
type Definition struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Value int    `json:"value" yaml:"value" toml:"value"`
}

func (d Definition) String() string {
	return d.Name + "=" + strconv.Itoa(d.Value)
}

func flag(name string, on bool) Definition {
	if on {
		return Definition{Name: name, Value: 1}
	}
	return Definition{Name: name, Value: 0}
}

// Derive returns the capability flags of a resolution. A failed
// resolution only carries WITH_RIVE=0.
func Derive(e catalog.Entry, resolved bool) []Definition {
	if !resolved {
		return []Definition{flag(WithRive, false)}
	}
	return []Definition{
		flag(WithRive, true),
		flag(WithRiveAudio, e.Audio),
		flag(ExternalAudioEngine, e.Audio && e.ExternalAudio),
	}
}

// ArchMarker returns the architecture marker of targets whose libraries
// are split per architecture. ok is false when no marker applies.
func ArchMarker(p target.Platform, arch target.Architecture) (Definition, bool) {
	if p != target.Mac {
		return Definition{}, false
	}
	switch arch {
	case target.Arm64:
		return flag(MacArm64, true), true
	case target.X64:
		return flag(MacIntel, true), true
	default:
		return Definition{}, false
	}
}

// Lookup returns the value of name in defs
func Lookup(defs []Definition, name string) (int, bool) {
	for _, d := range defs {
		if d.Name == name {
			return d.Value, true
		}
	}
	return 0, false
}
