package plan

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/rivelink/pkg/catalog"
	"github.com/arc-language/rivelink/pkg/features"
	"github.com/arc-language/rivelink/pkg/manifest"
	"github.com/arc-language/rivelink/pkg/target"
)

var (
	projectDir = filepath.FromSlash("/work/Game")
	moduleDir  = filepath.FromSlash("/work/Game/Plugins/Rive/Source/ThirdParty/RiveLibrary")
)

func newAssembler() *Assembler {
	return New(WithModuleDir(moduleDir), WithProjectDir(projectDir))
}

// allTargets enumerates every descriptor, supported or not
func allTargets() []target.Descriptor {
	var out []target.Descriptor
	platforms := append([]target.Platform{target.Unsupported}, target.Platforms...)
	for _, p := range platforms {
		for _, a := range target.Architectures {
			for _, c := range target.Configurations {
				for _, crt := range []bool{false, true} {
					out = append(out, target.Descriptor{Platform: p, Arch: a, Configuration: c, DebugCRT: crt})
				}
			}
		}
	}
	return out
}

func TestWindowsRelease(t *testing.T) {
	d := target.Descriptor{Platform: target.Windows, Arch: target.X64, Configuration: target.Development}
	p, err := newAssembler().Assemble(d)
	require.NoError(t, err)

	require.True(t, p.Supported())
	assert.Equal(t, []string{filepath.Join(moduleDir, "Includes")}, p.IncludeDirs())
	assert.Equal(t, []string{"d3dcompiler.lib"}, p.SystemLibraries())

	libs := p.Libraries()
	reqs, _ := catalog.Required(target.Windows, target.X64)
	require.Len(t, libs, len(reqs))
	for _, l := range libs {
		assert.True(t, strings.HasSuffix(l.Path, ".lib"), l.Path)
		assert.False(t, strings.HasSuffix(l.Path, "_d.lib"), l.Path)
		assert.Equal(t, filepath.Join(moduleDir, "Libraries", "Win64"), filepath.Dir(l.Path))
	}
	assert.Equal(t, filepath.Join(moduleDir, "Libraries", "Win64", "rive_libpng.lib"), libs[0].Path)

	assert.Equal(t, []features.Definition{
		{Name: features.WithRive, Value: 1},
		{Name: features.WithRiveAudio, Value: 1},
		{Name: features.ExternalAudioEngine, Value: 1},
	}, p.Definitions())

	_, ok := p.ManifestPath()
	assert.False(t, ok)
	assert.Empty(t, p.RuntimeLibraryPaths())
	assert.Equal(t, []string{"Vulkan", "zlib", "DX9", "DX11"}, p.EngineDependencies())
}

func TestWindowsDebugCRT(t *testing.T) {
	d := target.Descriptor{Platform: target.Windows, Arch: target.X64, Configuration: target.Debug, DebugCRT: true}
	p, err := newAssembler().Assemble(d)
	require.NoError(t, err)

	for _, l := range p.Libraries() {
		assert.True(t, strings.HasSuffix(l.Path, "_d.lib"), l.Path)
	}
	assert.Equal(t, "rive_d.lib", filepath.Base(p.Libraries()[7].Path))
}

func TestAndroidDebugWithoutPolicy(t *testing.T) {
	d := target.Descriptor{Platform: target.Android, Arch: target.Arm64, Configuration: target.Debug}
	p, err := newAssembler().Assemble(d)
	require.NoError(t, err)

	require.True(t, p.Supported())
	for _, l := range p.Libraries() {
		assert.NotContains(t, filepath.Base(l.Path), "_d.", l.Path)
		assert.True(t, strings.HasPrefix(filepath.Base(l.Path), "lib"), l.Path)
	}

	mp, ok := p.ManifestPath()
	require.True(t, ok)
	assert.Equal(t, filepath.Join("Plugins", "Rive", "Source", "ThirdParty", "RiveLibrary", manifest.FileName), mp)
}

func TestAndroidManifestUnreachable(t *testing.T) {
	a := New(WithModuleDir("Plugins/Rive"), WithProjectDir(projectDir))
	a.abs = func(string) (string, error) { return "", assert.AnError }

	_, err := a.Assemble(target.Descriptor{Platform: target.Android, Arch: target.Arm64, Configuration: target.Shipping})
	require.Error(t, err)
	assert.ErrorIs(t, err, manifest.ErrRelativize)

	// Platforms without a manifest are unaffected by the broken layout
	p, err := a.Assemble(target.Descriptor{Platform: target.Windows, Arch: target.X64, Configuration: target.Shipping})
	require.NoError(t, err)
	assert.True(t, p.Supported())
}

func TestAndroidDefaultProjectDir(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	p, err := New(WithModuleDir(moduleDir)).Assemble(target.Descriptor{Platform: target.Android, Arch: target.Arm64, Configuration: target.Shipping})
	require.NoError(t, err)

	mp, ok := p.ManifestPath()
	require.True(t, ok)
	assert.Equal(t, filepath.Join(moduleDir, manifest.FileName), filepath.Join(wd, mp))
}

func TestAndroidMixedRoots(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	p, err := New(WithModuleDir("Plugins/Rive"), WithProjectDir(projectDir)).
		Assemble(target.Descriptor{Platform: target.Android, Arch: target.Arm64, Configuration: target.Debug})
	require.NoError(t, err)

	mp, ok := p.ManifestPath()
	require.True(t, ok)
	assert.Equal(t, filepath.Join(wd, "Plugins", "Rive", manifest.FileName), filepath.Join(projectDir, mp))
	// Library paths keep the module root as configured
	assert.Equal(t, filepath.Join("Plugins", "Rive", "Includes"), p.IncludeDirs()[0])
}

func TestUnsupportedPlatform(t *testing.T) {
	p, err := newAssembler().Assemble(target.Descriptor{Platform: target.Unsupported, Arch: target.X64})
	require.NoError(t, err)

	assert.False(t, p.Supported())
	assert.Empty(t, p.Libraries())
	assert.Empty(t, p.IncludeDirs())
	assert.Empty(t, p.SystemLibraries())
	assert.Equal(t, []features.Definition{{Name: features.WithRive, Value: 0}}, p.Definitions())
	_, ok := p.ManifestPath()
	assert.False(t, ok)
}

func TestUnsupportedArchitecture(t *testing.T) {
	p, err := newAssembler().Assemble(target.Descriptor{Platform: target.Windows, Arch: target.Arm64})
	require.NoError(t, err)
	assert.False(t, p.Supported())
	assert.Len(t, p.Definitions(), 1)
}

func TestMacArchitectureBuckets(t *testing.T) {
	a := newAssembler()

	arm, err := a.Assemble(target.Descriptor{Platform: target.Mac, Arch: target.Arm64, Configuration: target.Shipping})
	require.NoError(t, err)
	intel, err := a.Assemble(target.Descriptor{Platform: target.Mac, Arch: target.X64, Configuration: target.Shipping})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(moduleDir, "Libraries", "Mac", "Mac"), filepath.Dir(arm.Libraries()[0].Path))
	assert.Equal(t, filepath.Join(moduleDir, "Libraries", "Mac", "Intel"), filepath.Dir(intel.Libraries()[0].Path))

	v, ok := arm.Definition(features.MacArm64)
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = arm.Definition(features.MacIntel)
	assert.False(t, ok)

	v, ok = intel.Definition(features.MacIntel)
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = intel.Definition(features.MacArm64)
	assert.False(t, ok)

	assert.Equal(t, []string{"Metal"}, arm.Frameworks())
}

func TestIOSSimulatorAndDevice(t *testing.T) {
	a := newAssembler()

	for _, crt := range []bool{false, true} {
		dev, err := a.Assemble(target.Descriptor{Platform: target.IOS, Arch: target.Arm64, Configuration: target.Debug, DebugCRT: crt})
		require.NoError(t, err)
		sim, err := a.Assemble(target.Descriptor{Platform: target.IOS, Arch: target.Simulator, Configuration: target.Debug, DebugCRT: crt})
		require.NoError(t, err)

		devLibs, simLibs := dev.Libraries(), sim.Libraries()
		require.Len(t, simLibs, len(devLibs))
		for i := range devLibs {
			assert.Equal(t, filepath.Dir(devLibs[i].Path), filepath.Dir(simLibs[i].Path))

			devFile, simFile := filepath.Base(devLibs[i].Path), filepath.Base(simLibs[i].Path)
			assert.True(t, strings.HasSuffix(simFile, ".sim.a"), simFile)
			assert.Equal(t, devFile, strings.Replace(simFile, ".sim.a", ".a", 1))
		}
	}
}

func TestUnixRuntimeSearchPath(t *testing.T) {
	p, err := newAssembler().Assemble(target.Descriptor{Platform: target.Unix, Arch: target.X64, Configuration: target.Development})
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(moduleDir, "Libraries", "Unix")}, p.RuntimeLibraryPaths())
	v, _ := p.Definition(features.WithRiveAudio)
	assert.Equal(t, 0, v)
	assert.Equal(t, "librive_libpng.a", filepath.Base(p.Libraries()[0].Path))
}

func TestDeterministic(t *testing.T) {
	a := newAssembler()
	b := newAssembler()

	for _, d := range allTargets() {
		p1, err := a.Assemble(d)
		require.NoError(t, err)
		p2, err := b.Assemble(d)
		require.NoError(t, err)

		require.Equal(t, p1, p2, "plans differ for %s:\n%s", d, spew.Sdump(p1, p2))
		assert.Equal(t, p1.Digest(), p2.Digest())
	}
}

func TestCatalogOrderAndUniqueness(t *testing.T) {
	a := newAssembler()
	for _, d := range allTargets() {
		p, err := a.Assemble(d)
		require.NoError(t, err)
		if !p.Supported() {
			continue
		}

		reqs, ok := catalog.Required(d.Platform, d.Arch)
		require.True(t, ok)
		libs := p.Libraries()
		require.Len(t, libs, len(reqs))

		seen := map[string]bool{}
		for i, l := range libs {
			assert.Equal(t, reqs[i].Name, l.Name, "order differs for %s", d)
			assert.False(t, seen[l.Path], "duplicate %s in %s", l.Path, d)
			seen[l.Path] = true
		}
	}
}

func TestDebugSuffixUniform(t *testing.T) {
	a := newAssembler()
	for _, d := range allTargets() {
		p, err := a.Assemble(d)
		require.NoError(t, err)
		if !p.Supported() {
			continue
		}

		entry, _ := catalog.Lookup(d.Platform)
		sim := d.Arch == target.Simulator
		suffixed := 0
		for _, l := range p.Libraries() {
			if entry.Rule.HasDebugSuffix(filepath.Base(l.Path), sim) {
				suffixed++
			}
		}

		if d.DebugPolicyActive() {
			assert.Equal(t, len(p.Libraries()), suffixed, "partial debug suffix in %s", d)
		} else {
			assert.Zero(t, suffixed, "unexpected debug suffix in %s", d)
		}
	}
}

func TestConcurrentAssemble(t *testing.T) {
	a := newAssembler()
	targets := allTargets()

	want := make([]string, len(targets))
	for i, d := range targets {
		p, err := a.Assemble(d)
		require.NoError(t, err)
		want[i] = p.Digest()
	}

	got := make([]string, len(targets))
	var wg sync.WaitGroup
	for i, d := range targets {
		wg.Add(1)
		go func(i int, d target.Descriptor) {
			defer wg.Done()
			p, err := a.Assemble(d)
			if err == nil {
				got[i] = p.Digest()
			}
		}(i, d)
	}
	wg.Wait()

	assert.Equal(t, want, got)
}

func TestAccessorsReturnCopies(t *testing.T) {
	p, err := newAssembler().Assemble(target.Descriptor{Platform: target.Windows, Arch: target.X64})
	require.NoError(t, err)

	libs := p.Libraries()
	libs[0].Path = "mutated"
	defs := p.Definitions()
	defs[0].Value = 42

	assert.NotEqual(t, "mutated", p.Libraries()[0].Path)
	v, _ := p.Definition(features.WithRive)
	assert.Equal(t, 1, v)
}

func TestCheckUnique(t *testing.T) {
	assert.NoError(t, checkUnique([]Library{{"a", "x/a"}, {"b", "x/b"}}))
	assert.ErrorIs(t, checkUnique([]Library{{"a", "x/a"}, {"a", "x/b"}}), ErrDuplicateLibrary)
	assert.ErrorIs(t, checkUnique([]Library{{"a", "x/a"}, {"b", "x/a"}}), ErrDuplicateLibrary)
}

func TestSnapshotDigest(t *testing.T) {
	a := newAssembler()
	rel, err := a.Assemble(target.Descriptor{Platform: target.Windows, Arch: target.X64, Configuration: target.Development})
	require.NoError(t, err)
	dbg, err := a.Assemble(target.Descriptor{Platform: target.Windows, Arch: target.X64, Configuration: target.Debug, DebugCRT: true})
	require.NoError(t, err)

	s := rel.Snapshot()
	assert.Equal(t, "windows/x64/development", s.Target)
	assert.Contains(t, s.Digest, "sha256")
	assert.Equal(t, rel.Digest(), s.Digest)
	assert.NotEqual(t, rel.Digest(), dbg.Digest())
}
