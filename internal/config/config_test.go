package config

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/gofloor/internal/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDecodeOverlaysDefaults(t *testing.T) {
	src := `
[walls]
height = 2.5

[colors]
selected = "#ffaa00"

[input]
multi_select = "shift"
camera = "alt"
`
	cfg, err := Decode(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, 2.5, cfg.Walls.Height)
	assert.Equal(t, 0.2, cfg.Walls.Thickness, "unset keys keep their defaults")
	assert.Equal(t, "#ffaa00", cfg.Colors.Selected)

	multi, camera := cfg.Modifiers()
	assert.Equal(t, input.ModShift, multi)
	assert.Equal(t, input.ModAlt, camera)
}

func TestDecodeRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"negative thickness", "[walls]\nthickness = -1", "walls.thickness must be positive"},
		{"scale bounds", "[labels]\nmin_scale = 2.0\nmax_scale = 1.0", "min_scale must not exceed"},
		{"text size", "[labels]\ntext_size = 0", "labels.text_size"},
		{"bad color", "[colors]\ndefault = \"blue\"", "colors.default"},
		{"unknown modifier", "[input]\ncamera = \"hyper\"", "input.camera"},
		{"same modifiers", "[input]\nmulti_select = \"ctrl\"\ncamera = \"control\"", "must differ"},
		{"margin", "[view]\nfit_margin = 0.5", "fit_margin"},
		{"initial view", "[view]\ninitial = \"side\"", "view.initial"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDecodeRejectsMalformedTOML(t *testing.T) {
	_, err := Decode(strings.NewReader("[walls\nheight = 1"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "gofloor.toml")
	require.NoError(t, os.WriteFile(path, []byte("[pick]\nmin_half_width = 0.5\n"), 0o644))

	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.Pick.MinHalfWidth)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestEncodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().Encode(&buf))

	cfg, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, c)

	_, err = ParseColor("#zz0000")
	assert.Error(t, err)
}

func TestBlend(t *testing.T) {
	black := color.RGBA{A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	assert.Equal(t, black, Blend(black, white, 0))
	assert.Equal(t, white, Blend(black, white, 1))
	assert.Equal(t, white, Blend(black, white, 7), "t is clamped")

	mid := Blend(black, white, 0.5)
	assert.Equal(t, mid.R, mid.G)
	assert.Equal(t, mid.G, mid.B)
	assert.Greater(t, mid.R, uint8(60))
	assert.Less(t, mid.R, uint8(200))

	half := Blend(color.RGBA{A: 0}, color.RGBA{A: 200}, 0.5)
	assert.Equal(t, uint8(100), half.A)
}
