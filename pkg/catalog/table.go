// pkg/catalog/table.go
package catalog

import (
	"github.com/arc-language/rivelink/pkg/naming"
	"github.com/arc-language/rivelink/pkg/target"
)

// fullSet is the library set of platforms built with every SDK component
var fullSet = []Requirement{
	{Name: "libpng", Codec: true},
	{Name: "libjpeg", Codec: true},
	{Name: "libwebp", Codec: true},
	{Name: "rive_harfbuzz"},
	{Name: "rive_sheenbidi"},
	{Name: "rive_yoga"},
	{Name: "rive_decoders"},
	{Name: "rive"},
	{Name: "rive_pls_renderer"},
}

// unixSet predates the webp decoder and the layout engine
var unixSet = []Requirement{
	{Name: "libpng", Codec: true},
	{Name: "libjpeg", Codec: true},
	{Name: "rive_harfbuzz"},
	{Name: "rive_sheenbidi"},
	{Name: "rive_decoders"},
	{Name: "rive"},
	{Name: "rive_pls_renderer"},
}

var entries = map[target.Platform]Entry{
	target.Windows: {
		Platform:           target.Windows,
		Dir:                "Win64",
		Rule:               naming.Windows,
		Archs:              map[target.Architecture]string{target.X64: ""},
		Libraries:          fullSet,
		Audio:              true,
		ExternalAudio:      true,
		SystemLibraries:    []string{"d3dcompiler.lib"},
		EngineDependencies: []string{"Vulkan", "zlib", "DX9", "DX11"},
	},
	target.Mac: {
		Platform: target.Mac,
		Dir:      "Mac",
		Rule:     naming.Archive,
		Archs: map[target.Architecture]string{
			target.Arm64: "Mac",
			target.X64:   "Intel",
		},
		Libraries:          fullSet,
		Audio:              true,
		ExternalAudio:      true,
		Frameworks:         []string{"Metal"},
		EngineDependencies: []string{"zlib"},
	},
	target.IOS: {
		Platform: target.IOS,
		Dir:      "IOS",
		Rule:     naming.Apple,
		Archs: map[target.Architecture]string{
			target.Arm64:     "",
			target.Simulator: "",
		},
		Libraries:          fullSet,
		Audio:              true,
		ExternalAudio:      true,
		Frameworks:         []string{"Metal"},
		EngineDependencies: []string{"zlib"},
	},
	target.Android: {
		Platform:           target.Android,
		Dir:                "Android",
		Rule:               naming.Archive,
		Archs:              map[target.Architecture]string{target.Arm64: ""},
		Libraries:          fullSet,
		Audio:              true,
		ExternalAudio:      true,
		EngineDependencies: []string{"Vulkan", "zlib"},
		Manifest:           true,
	},
	target.Unix: {
		Platform:           target.Unix,
		Dir:                "Unix",
		Rule:               naming.Unix,
		Archs:              map[target.Architecture]string{target.X64: ""},
		Libraries:          unixSet,
		EngineDependencies: []string{"Vulkan", "zlib"},
		RuntimeSearch:      true,
	},
}
