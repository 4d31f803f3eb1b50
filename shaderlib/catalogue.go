// Package shaderlib is the catalogue of Kage shader sources used by the
// effect pipeline. It holds only text assets and a name-to-source lookup;
// compiling and caching the resulting *ebiten.Shader values is the
// pipeline package's job, since that's where the render backend lives.
//
// Grounded on the teacher's inline Kage shader constants in filter.go
// (colorMatrixShaderSrc, pixelPerfectOutlineShaderSrc, ...): one untyped
// string constant per shader, `//kage:unit pixels` header, a package main /
// Fragment(dst vec4, src vec2, color vec4) vec4 entry point, alpha
// un-premultiplied before math and re-premultiplied on the way out.
package shaderlib

// PassName identifies one shader pass in the catalogue.
type PassName string

const (
	PassBrightnessContrast PassName = "brightness-contrast"
	PassSaturation         PassName = "saturation"
	PassHueRotate          PassName = "hue-rotate"
	PassInvert             PassName = "invert"
	PassGrayscale          PassName = "grayscale"
	PassSepia              PassName = "sepia"
	PassSharpen            PassName = "sharpen"
	PassVignette           PassName = "vignette"
	PassLevels             PassName = "levels"
	PassHSLAdjust          PassName = "hsl-adjust"
	PassDropShadow         PassName = "drop-shadow"
	PassGaussianBlurH      PassName = "gaussian-blur-h"
	PassGaussianBlurV      PassName = "gaussian-blur-v"
	PassLumetriMain        PassName = "lumetri-color-main"
	PassLumetriCurves      PassName = "lumetri-color-curves"
	PassLumetriSecondary   PassName = "lumetri-color-secondary"
	PassToneMapReinhard    PassName = "tone-map-reinhard"
	PassToneMapACES        PassName = "tone-map-aces"
	PassComposite          PassName = "composite"
)

// Linearize input curve types (spec §4.3's input-linearize row).
const (
	PassLinearizeSRGB   PassName = "input-linearize-srgb"
	PassLinearizeSLog3  PassName = "input-linearize-slog3"
	PassLinearizeCLog   PassName = "input-linearize-clog"
	PassLinearizeCLog3  PassName = "input-linearize-clog3"
	PassLinearizeVLog   PassName = "input-linearize-vlog"
	PassLinearizeLogC3  PassName = "input-linearize-logc3"
	PassLinearizeLogC4  PassName = "input-linearize-logc4"
	PassLinearizeNLog   PassName = "input-linearize-nlog"
)

var sources = map[PassName]string{
	PassBrightnessContrast: brightnessContrastShaderSrc,
	PassSaturation:         saturationShaderSrc,
	PassHueRotate:          hueRotateShaderSrc,
	PassInvert:             invertShaderSrc,
	PassGrayscale:          grayscaleShaderSrc,
	PassSepia:              sepiaShaderSrc,
	PassSharpen:            sharpenShaderSrc,
	PassVignette:           vignetteShaderSrc,
	PassLevels:             levelsShaderSrc,
	PassHSLAdjust:          hslAdjustShaderSrc,
	PassDropShadow:         dropShadowShaderSrc,
	PassGaussianBlurH:      gaussianBlurHShaderSrc,
	PassGaussianBlurV:      gaussianBlurVShaderSrc,
	PassLumetriMain:        lumetriMainShaderSrc,
	PassLumetriCurves:      lumetriCurvesShaderSrc,
	PassLumetriSecondary:   lumetriSecondaryShaderSrc,
	PassToneMapReinhard:    toneMapReinhardShaderSrc,
	PassToneMapACES:        toneMapACESShaderSrc,
	PassComposite:          compositeShaderSrc,
	PassLinearizeSRGB:      linearizeSRGBShaderSrc,
	PassLinearizeSLog3:     linearizeSLog3ShaderSrc,
	PassLinearizeCLog:      linearizeCLogShaderSrc,
	PassLinearizeCLog3:     linearizeCLog3ShaderSrc,
	PassLinearizeVLog:      linearizeVLogShaderSrc,
	PassLinearizeLogC3:     linearizeLogC3ShaderSrc,
	PassLinearizeLogC4:     linearizeLogC4ShaderSrc,
	PassLinearizeNLog:      linearizeNLogShaderSrc,
}

// Source returns the Kage source for name, and whether it exists.
func Source(name PassName) (string, bool) {
	src, ok := sources[name]
	return src, ok
}
