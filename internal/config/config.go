// Package config loads editor settings from TOML.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/philipparndt/gofloor/internal/input"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the complete editor configuration
type Config struct {
	Walls    WallConfig    `toml:"walls"`
	Colors   ColorConfig   `toml:"colors"`
	Pick     PickConfig    `toml:"pick"`
	Labels   LabelConfig   `toml:"labels"`
	View     ViewConfig    `toml:"view"`
	Input    InputConfig   `toml:"input"`
	Textures TextureConfig `toml:"textures"`
}

// WallConfig holds representation dimensions in world units
type WallConfig struct {
	Thickness float64 `toml:"thickness"`
	Height    float64 `toml:"height"`
	PlanDepth float64 `toml:"plan_depth"` // Extent of planar walls along the height axis
}

// ColorConfig holds hex colors
type ColorConfig struct {
	Default               string `toml:"default"`
	Highlighted           string `toml:"highlighted"`
	Selected              string `toml:"selected"`
	Preview               string `toml:"preview"`
	Label                 string `toml:"label"`
	BackgroundPlan        string `toml:"background_plan"`
	BackgroundPerspective string `toml:"background_perspective"`
}

// PickConfig tunes wall picking
type PickConfig struct {
	MinHalfWidth float64 `toml:"min_half_width"`
}

// LabelConfig tunes the length annotations
type LabelConfig struct {
	Height            float64 `toml:"height"` // Annotation height above ground in perspective mode
	MinScale          float64 `toml:"min_scale"`
	MaxScale          float64 `toml:"max_scale"`
	ReferenceDistance float64 `toml:"reference_distance"` // Distance at which scale is 1
	Precision         int     `toml:"precision"`
	Unit              string  `toml:"unit"`
	TextSize          float64 `toml:"text_size"` // Pixel height of label text at scale 1
}

// ViewConfig holds camera parameters
type ViewConfig struct {
	FrustumSize float64 `toml:"frustum_size"`
	FOV         float64 `toml:"fov"` // Degrees
	Near        float64 `toml:"near"`
	Far         float64 `toml:"far"`
	PlanNear    float64 `toml:"plan_near"`
	PlanFar     float64 `toml:"plan_far"`
	PlanHeight  float64 `toml:"plan_height"`
	FitMargin   float64 `toml:"fit_margin"`
	Initial     string  `toml:"initial"` // "plan" or "perspective"
}

// InputConfig names the modifier keys
type InputConfig struct {
	MultiSelect string `toml:"multi_select"`
	Camera      string `toml:"camera"`
}

// TextureConfig points at optional texture assets
type TextureConfig struct {
	Wall string `toml:"wall"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Walls: WallConfig{
			Thickness: 0.2,
			Height:    3.0,
			PlanDepth: 0.01,
		},
		Colors: ColorConfig{
			Default:               "#cccccc",
			Highlighted:           "#00ff00",
			Selected:              "#ff0000",
			Preview:               "#0000ff",
			Label:                 "#000000",
			BackgroundPlan:        "#ffffff",
			BackgroundPerspective: "#000000",
		},
		Pick: PickConfig{
			MinHalfWidth: 0.25,
		},
		Labels: LabelConfig{
			Height:            3.2,
			MinScale:          0.5,
			MaxScale:          1.5,
			ReferenceDistance: 40,
			Precision:         2,
			Unit:              "m",
			TextSize:          14,
		},
		View: ViewConfig{
			FrustumSize: 100,
			FOV:         35,
			Near:        0.1,
			Far:         500,
			PlanNear:    1,
			PlanFar:     100,
			PlanHeight:  5,
			FitMargin:   1.2,
			Initial:     "plan",
		},
		Input: InputConfig{
			MultiSelect: "ctrl",
			Camera:      "shift",
		},
	}
}

// Load reads path on top of the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML on top of the defaults and validates the result
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode writes the configuration as TOML
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate checks ranges, colors and modifier names
func (c Config) Validate() error {
	var problems []string

	positive := map[string]float64{
		"walls.thickness":           c.Walls.Thickness,
		"walls.height":              c.Walls.Height,
		"walls.plan_depth":          c.Walls.PlanDepth,
		"labels.min_scale":          c.Labels.MinScale,
		"labels.max_scale":          c.Labels.MaxScale,
		"labels.reference_distance": c.Labels.ReferenceDistance,
		"labels.text_size":          c.Labels.TextSize,
		"view.frustum_size":         c.View.FrustumSize,
		"view.fov":                  c.View.FOV,
		"view.near":                 c.View.Near,
		"view.far":                  c.View.Far,
		"view.plan_near":            c.View.PlanNear,
		"view.plan_far":             c.View.PlanFar,
		"view.plan_height":          c.View.PlanHeight,
	}
	for _, key := range sortedKeys(positive) {
		if positive[key] <= 0 {
			problems = append(problems, fmt.Sprintf("%s must be positive", key))
		}
	}

	if c.Pick.MinHalfWidth < 0 {
		problems = append(problems, "pick.min_half_width must not be negative")
	}
	if c.Labels.MinScale > c.Labels.MaxScale {
		problems = append(problems, "labels.min_scale must not exceed labels.max_scale")
	}
	if c.Labels.Precision < 0 {
		problems = append(problems, "labels.precision must not be negative")
	}
	if c.View.FOV >= 180 {
		problems = append(problems, "view.fov must be below 180 degrees")
	}
	if c.View.Near >= c.View.Far {
		problems = append(problems, "view.near must be below view.far")
	}
	if c.View.PlanNear >= c.View.PlanFar {
		problems = append(problems, "view.plan_near must be below view.plan_far")
	}
	if c.View.FitMargin < 1 {
		problems = append(problems, "view.fit_margin must be at least 1")
	}
	if c.View.Initial != "plan" && c.View.Initial != "perspective" {
		problems = append(problems, fmt.Sprintf("view.initial %q must be plan or perspective", c.View.Initial))
	}

	colors := c.Colors.named()
	for _, name := range sortedKeys(colors) {
		if _, err := ParseColor(colors[name]); err != nil {
			problems = append(problems, fmt.Sprintf("colors.%s: %v", name, err))
		}
	}

	multi, multiErr := input.ParseModifier(c.Input.MultiSelect)
	if multiErr != nil {
		problems = append(problems, fmt.Sprintf("input.multi_select: %v", multiErr))
	}
	camera, cameraErr := input.ParseModifier(c.Input.Camera)
	if cameraErr != nil {
		problems = append(problems, fmt.Sprintf("input.camera: %v", cameraErr))
	}
	if multiErr == nil && cameraErr == nil && multi == camera {
		problems = append(problems, "input.multi_select and input.camera must differ")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// named maps config keys to color values
func (c ColorConfig) named() map[string]string {
	return map[string]string{
		"default":                c.Default,
		"highlighted":            c.Highlighted,
		"selected":               c.Selected,
		"preview":                c.Preview,
		"label":                  c.Label,
		"background_plan":        c.BackgroundPlan,
		"background_perspective": c.BackgroundPerspective,
	}
}

// ParseColor converts a "#rrggbb" string to an opaque RGBA color
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// Blend mixes a toward b in Lab space. t is clamped to [0,1] and alpha is
// interpolated linearly.
func Blend(a, b color.RGBA, t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	alpha := float64(a.A) + (float64(b.A)-float64(a.A))*t
	return color.RGBA{R: r, G: g, B: bl, A: uint8(math.Round(alpha))}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Modifiers resolves the configured multi-select and camera modifiers.
// Both names are checked by Validate.
func (c Config) Modifiers() (multiSelect, camera input.Modifier) {
	multiSelect, _ = input.ParseModifier(c.Input.MultiSelect)
	camera, _ = input.ParseModifier(c.Input.Camera)
	return multiSelect, camera
}
