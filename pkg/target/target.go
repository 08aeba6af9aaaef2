// pkg/target/target.go
package target

import (
	"fmt"
	"strings"
)

// Platform identifies the operating system family a build is produced for
type Platform int

const (
	// Unsupported is the fallback for every platform the SDK does not ship for
	Unsupported Platform = iota
	Windows
	Mac
	IOS
	Android
	// Unix covers the Linux family
	Unix
)

// Platforms lists every supported platform in a fixed order
var Platforms = []Platform{Windows, Mac, IOS, Android, Unix}

var platformNames = map[Platform]string{
	Unsupported: "unsupported",
	Windows:     "windows",
	Mac:         "mac",
	IOS:         "ios",
	Android:     "android",
	Unix:        "unix",
}

func (p Platform) String() string {
	if name, ok := platformNames[p]; ok {
		return name
	}
	return platformNames[Unsupported]
}

// ParsePlatform maps a user or toolchain spelling to a Platform.
// Unknown spellings resolve to Unsupported, never to an error.
func ParsePlatform(s string) Platform {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "windows", "win64", "win":
		return Windows
	case "mac", "macos", "macosx", "darwin", "osx":
		return Mac
	case "ios":
		return IOS
	case "android":
		return Android
	case "unix", "linux", "linuxarm64":
		return Unix
	default:
		return Unsupported
	}
}

// Architecture identifies the CPU target
type Architecture int

const (
	X64 Architecture = iota
	Arm64
	// Simulator is the iOS simulator slice
	Simulator
)

// Architectures lists every architecture in a fixed order
var Architectures = []Architecture{X64, Arm64, Simulator}

func (a Architecture) String() string {
	switch a {
	case X64:
		return "x64"
	case Arm64:
		return "arm64"
	case Simulator:
		return "simulator"
	default:
		return fmt.Sprintf("arch(%d)", int(a))
	}
}

// ParseArchitecture maps common spellings (including Go's GOARCH values)
// to an Architecture.
func ParseArchitecture(s string) (Architecture, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x64", "amd64", "x86_64", "intel":
		return X64, nil
	case "arm64", "aarch64":
		return Arm64, nil
	case "simulator", "sim", "iossimulator":
		return Simulator, nil
	default:
		return 0, fmt.Errorf("unknown architecture %q", s)
	}
}

// Configuration is the build configuration class
type Configuration int

const (
	Debug Configuration = iota
	DebugGame
	Development
	Test
	Shipping
)

// Configurations lists every configuration in a fixed order
var Configurations = []Configuration{Debug, DebugGame, Development, Test, Shipping}

func (c Configuration) String() string {
	switch c {
	case Debug:
		return "debug"
	case DebugGame:
		return "debuggame"
	case Development:
		return "development"
	case Test:
		return "test"
	case Shipping:
		return "shipping"
	default:
		return fmt.Sprintf("config(%d)", int(c))
	}
}

// ParseConfiguration maps a configuration name to a Configuration.
// "release" is accepted as an alias for Development.
func ParseConfiguration(s string) (Configuration, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug, nil
	case "debuggame":
		return DebugGame, nil
	case "development", "release":
		return Development, nil
	case "test":
		return Test, nil
	case "shipping":
		return Shipping, nil
	default:
		return 0, fmt.Errorf("unknown configuration %q", s)
	}
}

// Descriptor is the immutable input of a resolution
type Descriptor struct {
	Platform      Platform
	Arch          Architecture
	Configuration Configuration
	// DebugCRT reports whether debug configurations actually link the
	// debug runtime libraries. It is a host build policy, not implied by
	// Configuration.
	DebugCRT bool
}

// DebugPolicyActive reports whether debug-suffixed libraries must be linked
func (d Descriptor) DebugPolicyActive() bool {
	return d.Configuration == Debug && d.DebugCRT
}

func (d Descriptor) String() string {
	s := d.Platform.String() + "/" + d.Arch.String() + "/" + d.Configuration.String()
	if d.DebugCRT {
		s += "+crt"
	}
	return s
}

// Parse builds a Descriptor from its string parts
func Parse(platform, arch, config string, debugCRT bool) (Descriptor, error) {
	a, err := ParseArchitecture(arch)
	if err != nil {
		return Descriptor{}, err
	}
	c, err := ParseConfiguration(config)
	if err != nil {
		return Descriptor{}, err
	}
	return Descriptor{
		Platform:      ParsePlatform(platform),
		Arch:          a,
		Configuration: c,
		DebugCRT:      debugCRT,
	}, nil
}
