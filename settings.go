package sigil

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Preset is the YAML-facing settings tree consumed from a preset file or an
// editor. It mirrors the host configuration surface (animation.mode,
// lineFactory.sineWave.type, lineFactory.modulation.type, ...) with string
// enums, and converts into the typed config structs the core consumes.
//
// Unknown or missing string values fall back to documented defaults (mode →
// grow, wave type → sine, modulation → none) rather than erroring: presets
// are edited by hand and feed a per-frame loop where a hard failure would
// freeze the visualization.
type Preset struct {
	Animation   AnimationSettings   `yaml:"animation"`
	LineFactory LineFactorySettings `yaml:"lineFactory"`
	Fractal     FractalSettings     `yaml:"fractal"`
	Stacking    StackingSettings    `yaml:"stacking"`
}

// AnimationSettings is the animation subtree.
type AnimationSettings struct {
	Mode            string  `yaml:"mode"`
	Reverse         bool    `yaml:"reverse"`
	Speed           float64 `yaml:"speed"`
	Intensity       float64 `yaml:"intensity"`
	FadeIn          float64 `yaml:"fadeIn"`
	FadeOut         float64 `yaml:"fadeOut"`
	VariableTiming  bool    `yaml:"variableTiming"`
	StaggerDelay    float64 `yaml:"staggerDelay"`
	ChildPhaseShift float64 `yaml:"childPhaseShift"`
}

// LineFactorySettings is the lineFactory subtree.
type LineFactorySettings struct {
	SineWave   WaveSettings       `yaml:"sineWave"`
	Modulation ModulationSettings `yaml:"modulation"`
	Taper      TaperSettings      `yaml:"taper"`
	Dash       DashSettings       `yaml:"dash"`
	Glow       GlowSettings       `yaml:"glow"`
	Outline    OutlineSettings    `yaml:"outline"`
	LoopLine   bool               `yaml:"loopLine"`
}

// WaveSettings is the sineWave subtree.
type WaveSettings struct {
	Type          string              `yaml:"type"`
	Amplitude     float64             `yaml:"amplitude"`
	Frequency     float64             `yaml:"frequency"`
	Phase         float64             `yaml:"phase"`
	Animated      bool                `yaml:"animated"`
	Speed         float64             `yaml:"speed"`
	Bidirectional bool                `yaml:"bidirectional"`
	Components    []ComponentSettings `yaml:"components"`
}

// ComponentSettings is one compound-wave component.
type ComponentSettings struct {
	Type      string  `yaml:"type"`
	Frequency float64 `yaml:"frequency"`
	Phase     float64 `yaml:"phase"`
	Weight    float64 `yaml:"weight"`
}

// ModulationSettings is the modulation subtree.
type ModulationSettings struct {
	Type      string    `yaml:"type"`
	Frequency float64   `yaml:"frequency"`
	Depth     float64   `yaml:"depth"`
	Harmonics []float64 `yaml:"harmonics"`
}

// TaperSettings is the taper subtree.
type TaperSettings struct {
	Type  string  `yaml:"type"`
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}

// DashSettings is the dash subtree.
type DashSettings struct {
	Pattern []float64 `yaml:"pattern"`
	Offset  float64   `yaml:"offset"`
}

// GlowSettings is the glow subtree. Color is "#rrggbb" or "#rrggbbaa".
type GlowSettings struct {
	Intensity float64 `yaml:"intensity"`
	Color     string  `yaml:"color"`
}

// OutlineSettings is the outline subtree.
type OutlineSettings struct {
	Enabled bool    `yaml:"enabled"`
	Color   string  `yaml:"color"`
	Width   float64 `yaml:"width"`
}

// FractalSettings is the fractal subtree.
type FractalSettings struct {
	Depth             int     `yaml:"depth"`
	Scale             float64 `yaml:"scale"`
	ThicknessFalloff  float64 `yaml:"thicknessFalloff"`
	ChildCount        int     `yaml:"childCount"`
	SacredPositioning bool    `yaml:"sacredPositioning"`
	Intensity         float64 `yaml:"intensity"`
}

// StackingSettings is the stacking subtree.
type StackingSettings struct {
	Count          int     `yaml:"count"`
	Offset         float64 `yaml:"offset"`
	Interval       float64 `yaml:"interval"`
	OpacityFalloff float64 `yaml:"opacityFalloff"`
}

// LoadPreset parses a YAML preset document.
func LoadPreset(data []byte) (*Preset, error) {
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse preset: %w", err)
	}
	return &p, nil
}

// AnimationConfig converts the animation subtree into a ShapeAnimationConfig.
func (p *Preset) AnimationConfig() ShapeAnimationConfig {
	a := p.Animation
	return ShapeAnimationConfig{
		Mode:            parseAnimationMode(a.Mode),
		Reverse:         a.Reverse,
		Speed:           a.Speed,
		Intensity:       a.Intensity,
		FadeIn:          a.FadeIn,
		FadeOut:         a.FadeOut,
		VariableTiming:  a.VariableTiming,
		StaggerDelay:    a.StaggerDelay,
		ChildPhaseShift: a.ChildPhaseShift,
	}
}

// WaveSpec converts the sineWave subtree, filling the documented defaults for
// missing amplitude and frequency.
func (p *Preset) WaveSpec() WaveSpec {
	w := p.LineFactory.SineWave
	spec := WaveSpec{
		Type:          parseWaveType(w.Type),
		Amplitude:     w.Amplitude,
		Frequency:     w.Frequency,
		Phase:         w.Phase,
		Animated:      w.Animated,
		Speed:         w.Speed,
		Bidirectional: w.Bidirectional,
	}
	if spec.Amplitude == 0 {
		spec.Amplitude = defaultAmplitude
	}
	if spec.Frequency == 0 {
		spec.Frequency = defaultFrequency
	}
	for _, c := range w.Components {
		spec.Components = append(spec.Components, WaveComponent{
			Type:      parseWaveType(c.Type),
			Frequency: c.Frequency,
			Phase:     c.Phase,
			Weight:    c.Weight,
		})
	}
	return spec
}

// ModulationSpec converts the modulation subtree.
func (p *Preset) ModulationSpec() ModulationSpec {
	m := p.LineFactory.Modulation
	return ModulationSpec{
		Type:      parseModulationType(m.Type),
		Frequency: m.Frequency,
		Depth:     m.Depth,
		Harmonics: m.Harmonics,
	}
}

// LineStyle converts the taper/dash/glow/outline subtrees.
func (p *Preset) LineStyle() LineStyleSpec {
	lf := p.LineFactory
	return LineStyleSpec{
		Taper: TaperSpec{
			Type:  parseTaperType(lf.Taper.Type),
			Start: lf.Taper.Start,
			End:   lf.Taper.End,
		},
		Dash: DashSpec{
			Pattern: lf.Dash.Pattern,
			Offset:  lf.Dash.Offset,
		},
		Glow: GlowSpec{
			Intensity: lf.Glow.Intensity,
			Color:     ParseColor(lf.Glow.Color),
		},
		Outline: OutlineSpec{
			Enabled: lf.Outline.Enabled,
			Color:   ParseColor(lf.Outline.Color),
			Width:   lf.Outline.Width,
		},
		LoopLine: lf.LoopLine,
	}
}

// FractalSpec converts the fractal subtree.
func (p *Preset) FractalSpec() FractalSpec {
	f := p.Fractal
	return FractalSpec{
		Depth:             f.Depth,
		Scale:             f.Scale,
		ThicknessFalloff:  f.ThicknessFalloff,
		ChildCount:        f.ChildCount,
		SacredPositioning: f.SacredPositioning,
		Intensity:         f.Intensity,
	}
}

// StackSpec converts the stacking subtree.
func (p *Preset) StackSpec() StackSpec {
	s := p.Stacking
	return StackSpec{
		Count:          s.Count,
		Offset:         s.Offset,
		Interval:       s.Interval,
		OpacityFalloff: s.OpacityFalloff,
	}
}

// --- string enum mapping ---

var animationModes = map[string]AnimationMode{
	"grow":     AnimGrow,
	"pulse":    AnimPulse,
	"orbit":    AnimOrbit,
	"waveform": AnimWaveform,
	"spiral":   AnimSpiral,
	"harmonic": AnimHarmonic,
	"swarm":    AnimSwarm,
	"breathe":  AnimBreathe,
}

func parseAnimationMode(s string) AnimationMode {
	if m, ok := animationModes[strings.ToLower(s)]; ok {
		return m
	}
	return AnimGrow
}

var waveTypes = map[string]WaveType{
	"none":      WaveNone,
	"sine":      WaveSine,
	"cosine":    WaveCosine,
	"square":    WaveSquare,
	"triangle":  WaveTriangle,
	"sawtooth":  WaveSawtooth,
	"pulse":     WavePulse,
	"noise":     WaveNoise,
	"lissajous": WaveLissajous,
	"figure8":   WaveFigure8,
	"rose":      WaveRose,
	"butterfly": WaveButterfly,
	"compound":  WaveCompound,
}

func parseWaveType(s string) WaveType {
	if w, ok := waveTypes[strings.ToLower(s)]; ok {
		return w
	}
	return WaveSine
}

var modulationTypes = map[string]ModulationType{
	"none":      ModNone,
	"frequency": ModFrequency,
	"amplitude": ModAmplitude,
	"phase":     ModPhase,
	"harmonic":  ModHarmonic,
}

func parseModulationType(s string) ModulationType {
	if m, ok := modulationTypes[strings.ToLower(s)]; ok {
		return m
	}
	return ModNone
}

var taperTypes = map[string]TaperType{
	"none":  TaperNone,
	"start": TaperStart,
	"end":   TaperEnd,
	"both":  TaperBoth,
}

func parseTaperType(s string) TaperType {
	if t, ok := taperTypes[strings.ToLower(s)]; ok {
		return t
	}
	return TaperNone
}

// ParseColor parses "#rrggbb" or "#rrggbbaa" into a Color. Malformed input
// yields white, keeping preset errors visible rather than invisible.
func ParseColor(s string) Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return ColorWhite
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return ColorWhite
	}
	c := Color{A: 1}
	if len(s) == 8 {
		c.A = float64(v&0xff) / 255
		v >>= 8
	}
	c.B = float64(v&0xff) / 255
	c.G = float64(v>>8&0xff) / 255
	c.R = float64(v>>16&0xff) / 255
	return c
}
