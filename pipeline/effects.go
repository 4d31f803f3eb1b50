package pipeline

import (
	"github.com/phanxgames/willow-compositor/model"
	"github.com/phanxgames/willow-compositor/shaderlib"
)

// PassInvocation is one scheduled shader pass: which compiled shader to run
// and the scalar/texture uniforms to bind for it.
type PassInvocation struct {
	Name     shaderlib.PassName
	Uniforms map[string]any
}

// paramF64 reads a numeric parameter with a default, tolerating the dynamic
// model.Value representation (float64, float32, or int).
func paramF64(params map[model.ParamId]model.Value, id model.ParamId, def float64) float64 {
	v, ok := params[id]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	default:
		return def
	}
}

func paramBool(params map[model.ParamId]model.Value, id model.ParamId, def bool) bool {
	v, ok := params[id]
	if !ok {
		return def
	}
	b, ok := v.(bool)
	if !ok {
		return def
	}
	return b
}

// EffectConfig resolves an effect instance's parameters into an ordered
// pass list with bound uniforms. An empty pass list means skip the effect
// entirely (e.g. blur radius 0), per the spec's effectConfig contract.
func EffectConfig(fx *model.EffectInstance, params map[model.ParamId]model.Value) []PassInvocation {
	switch fx.EffectId {
	case "brightness-contrast":
		brightness := paramF64(params, "brightness", 0)
		contrast := paramF64(params, "contrast", 0)
		return []PassInvocation{{
			Name: shaderlib.PassBrightnessContrast,
			Uniforms: map[string]any{
				"Brightness": float32(brightness),
				"Contrast":   float32((contrast + 100) / 100),
			},
		}}
	case "saturation":
		sat := paramF64(params, "saturation", 100)
		return []PassInvocation{{
			Name:     shaderlib.PassSaturation,
			Uniforms: map[string]any{"Saturation": float32(sat / 100)},
		}}
	case "hue-rotate":
		deg := paramF64(params, "angle", 0)
		return []PassInvocation{{
			Name:     shaderlib.PassHueRotate,
			Uniforms: map[string]any{"HueDegrees": float32(deg)},
		}}
	case "invert":
		return []PassInvocation{{Name: shaderlib.PassInvert}}
	case "grayscale":
		return []PassInvocation{{Name: shaderlib.PassGrayscale}}
	case "sepia":
		return []PassInvocation{{Name: shaderlib.PassSepia}}
	case "sharpen":
		amount := paramF64(params, "amount", 0)
		if amount <= 0 {
			return nil
		}
		return []PassInvocation{{
			Name:     shaderlib.PassSharpen,
			Uniforms: map[string]any{"Amount": float32(amount)},
		}}
	case "vignette":
		return []PassInvocation{{
			Name: shaderlib.PassVignette,
			Uniforms: map[string]any{
				"Center":      []float32{float32(paramF64(params, "centerX", 0.5)), float32(paramF64(params, "centerY", 0.5))},
				"Radius":      float32(paramF64(params, "radius", 0.5)),
				"Softness":    float32(paramF64(params, "softness", 0.3)),
				"Roundness":   float32(paramF64(params, "roundness", 0)),
				"AspectRatio": float32(paramF64(params, "aspectRatio", 16.0/9.0)),
			},
		}}
	case "levels":
		return []PassInvocation{{
			Name: shaderlib.PassLevels,
			Uniforms: map[string]any{
				"InBlack":  float32(paramF64(params, "inBlack", 0)),
				"InWhite":  float32(paramF64(params, "inWhite", 1)),
				"Gamma":    float32(paramF64(params, "gamma", 1)),
				"OutBlack": float32(paramF64(params, "outBlack", 0)),
				"OutWhite": float32(paramF64(params, "outWhite", 1)),
			},
		}}
	case "hsl-adjust":
		return []PassInvocation{{
			Name: shaderlib.PassHSLAdjust,
			Uniforms: map[string]any{
				"HueShift":         float32(paramF64(params, "hue", 0)),
				"SaturationScale":  float32(paramF64(params, "saturation", 100) / 100),
				"LightnessShift":   float32(paramF64(params, "lightness", 0) / 100),
			},
		}}
	case "drop-shadow":
		return []PassInvocation{{
			Name: shaderlib.PassDropShadow,
			Uniforms: map[string]any{
				"Offset":      []float32{float32(paramF64(params, "offsetX", 4)), float32(paramF64(params, "offsetY", 4))},
				"ShadowColor": colorUniform(params),
				"Softness":    float32(paramF64(params, "softness", 0.2)),
			},
		}}
	case "gaussian-blur":
		radius := paramF64(params, "radius", 0)
		if radius <= 0 {
			return nil
		}
		u := map[string]any{"Radius": float32(radius)}
		return []PassInvocation{
			{Name: shaderlib.PassGaussianBlurH, Uniforms: u},
			{Name: shaderlib.PassGaussianBlurV, Uniforms: u},
		}
	case "lumetri-color":
		return lumetriPasses(params)
	default:
		return nil
	}
}

func colorUniform(params map[model.ParamId]model.Value) []float32 {
	return []float32{
		float32(paramF64(params, "colorR", 0)),
		float32(paramF64(params, "colorG", 0)),
		float32(paramF64(params, "colorB", 0)),
		float32(paramF64(params, "colorA", 1)),
	}
}

// lumetriPasses builds the compound lumetri-color pass chain: main always
// runs; sharpen, curves, and secondary are each conditional per spec §4.3.
func lumetriPasses(params map[model.ParamId]model.Value) []PassInvocation {
	passes := []PassInvocation{{
		Name:     shaderlib.PassLumetriMain,
		Uniforms: lumetriMainUniforms(params),
	}}

	sharpenAmt := paramF64(params, "creativeSharpen", 0)
	if sharpenAmt > 0 {
		passes = append(passes, PassInvocation{
			Name:     shaderlib.PassSharpen,
			Uniforms: map[string]any{"Amount": float32(sharpenAmt)},
		})
	}

	curvesEnabled := paramBool(params, "curvesEnabled", false)
	if curvesEnabled && params["lumetriCurveLUT"] != nil {
		passes = append(passes, PassInvocation{
			Name: shaderlib.PassLumetriCurves,
			Uniforms: map[string]any{
				"HSLCurvesEnabled": boolUniform(paramBool(params, "hslCurvesEnabled", false)),
			},
		})
	}

	secondaryEnabled := paramBool(params, "secondaryEnabled", false)
	if secondaryEnabled {
		passes = append(passes, PassInvocation{
			Name:     shaderlib.PassLumetriSecondary,
			Uniforms: lumetriSecondaryUniforms(params),
		})
	}

	return passes
}

func boolUniform(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

func lumetriMainUniforms(params map[model.ParamId]model.Value) map[string]any {
	return map[string]any{
		"Temperature":         float32(paramF64(params, "temperature", 0)),
		"Tint":                float32(paramF64(params, "tint", 0)),
		"ExposureStops":       float32(paramF64(params, "exposure", 0)),
		"Contrast":            float32((paramF64(params, "contrast", 0) + 100) / 100),
		"Highlights":          float32(paramF64(params, "highlights", 0) / 100),
		"Shadows":             float32(paramF64(params, "shadows", 0) / 100),
		"Whites":              float32(paramF64(params, "whites", 0) / 100),
		"Blacks":              float32(paramF64(params, "blacks", 0) / 100),
		"Saturation":          float32(paramF64(params, "saturation", 100) / 100),
		"Vibrance":            float32(paramF64(params, "vibrance", 0) / 100),
		"FadedFilmAmount":     float32(paramF64(params, "fadedFilm", 0) / 100),
		"ShadowTintR":         float32(paramF64(params, "shadowTintR", 0.5)),
		"ShadowTintG":         float32(paramF64(params, "shadowTintG", 0.5)),
		"ShadowTintB":         float32(paramF64(params, "shadowTintB", 0.5)),
		"HighlightTintR":      float32(paramF64(params, "highlightTintR", 0.5)),
		"HighlightTintG":      float32(paramF64(params, "highlightTintG", 0.5)),
		"HighlightTintB":      float32(paramF64(params, "highlightTintB", 0.5)),
		"ShadowWheelR":        float32(paramF64(params, "shadowWheelR", 0)),
		"ShadowWheelG":        float32(paramF64(params, "shadowWheelG", 0)),
		"ShadowWheelB":        float32(paramF64(params, "shadowWheelB", 0)),
		"ShadowWheelLuma":     float32(paramF64(params, "shadowWheelLuma", 0)),
		"MidtoneWheelR":       float32(paramF64(params, "midtoneWheelR", 0)),
		"MidtoneWheelG":       float32(paramF64(params, "midtoneWheelG", 0)),
		"MidtoneWheelB":       float32(paramF64(params, "midtoneWheelB", 0)),
		"MidtoneWheelLuma":    float32(paramF64(params, "midtoneWheelLuma", 0)),
		"HighlightWheelR":     float32(paramF64(params, "highlightWheelR", 0)),
		"HighlightWheelG":     float32(paramF64(params, "highlightWheelG", 0)),
		"HighlightWheelB":     float32(paramF64(params, "highlightWheelB", 0)),
		"HighlightWheelLuma":  float32(paramF64(params, "highlightWheelLuma", 0)),
		"VignetteAmount":      float32(paramF64(params, "vignetteAmount", 0)),
		"VignetteRoundness":   float32(paramF64(params, "vignetteRoundness", 0)),
		"AspectRatio":         float32(paramF64(params, "aspectRatio", 16.0/9.0)),
	}
}

func lumetriSecondaryUniforms(params map[model.ParamId]model.Value) map[string]any {
	return map[string]any{
		"KeyHue":                float32(paramF64(params, "keyHue", 0)),
		"KeyHueRange":           float32(paramF64(params, "keyHueRange", 0.1)),
		"KeySaturation":         float32(paramF64(params, "keySaturation", 0.5)),
		"KeySatRange":           float32(paramF64(params, "keySatRange", 0.2)),
		"KeyLuma":               float32(paramF64(params, "keyLuma", 0.5)),
		"KeyLumaRange":          float32(paramF64(params, "keyLumaRange", 0.2)),
		"Denoise":               float32(paramF64(params, "denoise", 0)),
		"ShowMask":              boolUniform(paramBool(params, "showMask", false)),
		"CorrectionTemperature": float32(paramF64(params, "correctionTemperature", 0)),
		"CorrectionTint":        float32(paramF64(params, "correctionTint", 0)),
		"CorrectionContrast":    float32((paramF64(params, "correctionContrast", 0) + 100) / 100),
		"CorrectionSaturation":  float32(paramF64(params, "correctionSaturation", 100) / 100),
		"CorrectionSharpen":     float32(paramF64(params, "correctionSharpen", 0)),
	}
}
