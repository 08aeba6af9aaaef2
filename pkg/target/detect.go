// pkg/target/detect.go
package target

import (
	"runtime"
)

// Detect returns a descriptor for the host the tool is running on, in the
// given configuration. Hosts the SDK does not ship for resolve to
// Unsupported.
func Detect(config Configuration) Descriptor {
	return detect(runtime.GOOS, runtime.GOARCH, config)
}

func detect(goos, goarch string, config Configuration) Descriptor {
	d := Descriptor{
		Platform:      ParsePlatform(goos),
		Configuration: config,
	}

	arch, err := ParseArchitecture(goarch)
	if err != nil {
		d.Platform = Unsupported
		return d
	}
	d.Arch = arch

	return d
}
