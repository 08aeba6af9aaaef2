package features

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arc-language/rivelink/pkg/catalog"
	"github.com/arc-language/rivelink/pkg/target"
)

func TestDeriveResolved(t *testing.T) {
	win, _ := catalog.Lookup(target.Windows)
	assert.Equal(t, []Definition{
		{WithRive, 1},
		{WithRiveAudio, 1},
		{ExternalAudioEngine, 1},
	}, Derive(win, true))

	unix, _ := catalog.Lookup(target.Unix)
	assert.Equal(t, []Definition{
		{WithRive, 1},
		{WithRiveAudio, 0},
		{ExternalAudioEngine, 0},
	}, Derive(unix, true))
}

func TestDeriveFailed(t *testing.T) {
	win, _ := catalog.Lookup(target.Windows)
	assert.Equal(t, []Definition{{WithRive, 0}}, Derive(win, false))
	assert.Equal(t, []Definition{{WithRive, 0}}, Derive(catalog.Entry{}, false))
}

func TestExternalRequiresAudio(t *testing.T) {
	defs := Derive(catalog.Entry{ExternalAudio: true}, true)
	v, ok := Lookup(defs, ExternalAudioEngine)
	assert.True(t, ok)
	assert.Equal(t, 0, v)
}

func TestArchMarker(t *testing.T) {
	d, ok := ArchMarker(target.Mac, target.Arm64)
	assert.True(t, ok)
	assert.Equal(t, Definition{MacArm64, 1}, d)

	d, ok = ArchMarker(target.Mac, target.X64)
	assert.True(t, ok)
	assert.Equal(t, Definition{MacIntel, 1}, d)

	_, ok = ArchMarker(target.IOS, target.Arm64)
	assert.False(t, ok)

	_, ok = ArchMarker(target.Windows, target.X64)
	assert.False(t, ok)
}

func TestDefinitionString(t *testing.T) {
	assert.Equal(t, "WITH_RIVE=1", Definition{WithRive, 1}.String())
}
