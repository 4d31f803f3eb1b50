package shaderlib

// lumetriMainShaderSrc implements the four basic sub-sections (white
// balance, exposure, contrast, zone-targeted tone) followed by the creative
// sub-sections (faded film, secondary vibrance/saturation, shadow/highlight
// tint) and the 3-way color wheels, in the order given by the spec's
// "Lumetri main" fragment-shader contract, ending with the vignette.
const lumetriMainShaderSrc = `//kage:unit pixels
package main

var Temperature float
var Tint float
var ExposureStops float
var Contrast float
var Highlights float
var Shadows float
var Whites float
var Blacks float
var Saturation float
var Vibrance float
var FadedFilmAmount float
var ShadowTintR float
var ShadowTintG float
var ShadowTintB float
var HighlightTintR float
var HighlightTintG float
var HighlightTintB float
var ShadowWheelR float
var ShadowWheelG float
var ShadowWheelB float
var ShadowWheelLuma float
var MidtoneWheelR float
var MidtoneWheelG float
var MidtoneWheelB float
var MidtoneWheelLuma float
var HighlightWheelR float
var HighlightWheelG float
var HighlightWheelB float
var HighlightWheelLuma float
var VignetteAmount float
var VignetteRoundness float
var AspectRatio float

func luma(rgb vec3) float {
	return dot(rgb, vec3(0.2126, 0.7152, 0.0722))
}

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	c := imageSrc0At(src)
	if c.a > 0 {
		c.rgb /= c.a
	}
	rgb := c.rgb

	// White balance.
	rgb.b += Temperature * -0.15
	rgb.r += Temperature * 0.15
	rgb.g += Tint * -0.1
	rgb.r += Tint * 0.05
	rgb.b += Tint * 0.05

	// Exposure.
	rgb *= exp2(ExposureStops)

	// Contrast around mid-gray.
	rgb = (rgb-0.5)*Contrast + 0.5

	// Zone-targeted tone (four smoothstep masks over luma).
	l := luma(rgb)
	shadowMask := 1.0 - smoothstep(0.0, 0.5, l)
	highlightMask := smoothstep(0.5, 1.0, l)
	whiteMask := smoothstep(0.75, 1.0, l)
	blackMask := 1.0 - smoothstep(0.0, 0.25, l)
	rgb += Shadows * shadowMask * 0.5
	rgb += Highlights * highlightMask * 0.5
	rgb += Whites * whiteMask * 0.5
	rgb += Blacks * blackMask * 0.5

	// Saturation + vibrance.
	l2 := luma(rgb)
	rgb = mix(vec3(l2, l2, l2), rgb, Saturation)
	curSat := length(rgb - vec3(l2, l2, l2))
	vibMask := 1.0 - clamp(curSat, 0, 1)
	rgb = mix(rgb, mix(vec3(l2, l2, l2), rgb, 1.0+Vibrance), vibMask)

	// Creative: faded film (linear black lift).
	rgb = mix(rgb, rgb*(1.0-FadedFilmAmount)+FadedFilmAmount*0.08, FadedFilmAmount)

	// Creative: shadow/highlight tints, neutral-gray-is-no-op.
	l3 := luma(rgb)
	sMask := 1.0 - smoothstep(0.0, 0.5, l3)
	hMask := smoothstep(0.5, 1.0, l3)
	rgb += (vec3(ShadowTintR, ShadowTintG, ShadowTintB) - 0.5) * 2.0 * sMask * 0.25
	rgb += (vec3(HighlightTintR, HighlightTintG, HighlightTintB) - 0.5) * 2.0 * hMask * 0.25

	// 3-way color wheels.
	l4 := luma(rgb)
	shadows3 := 1.0 - smoothstep(0.0, 0.5, l4)
	midtones3 := max(0.0, 1.0-abs(l4-0.5)*2.0)
	highlights3 := smoothstep(0.5, 1.0, l4)
	rgb += vec3(ShadowWheelR, ShadowWheelG, ShadowWheelB) * shadows3
	rgb += ShadowWheelLuma * shadows3
	rgb += vec3(MidtoneWheelR, MidtoneWheelG, MidtoneWheelB) * midtones3
	rgb += MidtoneWheelLuma * midtones3
	rgb += vec3(HighlightWheelR, HighlightWheelG, HighlightWheelB) * highlights3
	rgb += HighlightWheelLuma * highlights3

	// Vignette: radial falloff mixing aspect ratio between 16:9 and 1:1.
	d := src - vec2(0.5, 0.5)
	aspectMix := mix(AspectRatio, 1.0, VignetteRoundness)
	d.x /= aspectMix
	dist := length(d)
	vMask := 1.0 - smoothstep(0.3, 0.75, dist)*VignetteAmount
	rgb *= vMask

	rgb = clamp(rgb, 0, 1)
	return vec4(rgb*c.a, c.a)
}
`

// lumetriCurvesShaderSrc applies the per-channel master/RGB curve LUT and,
// if enabled, the five-row HSL curve LUT.
const lumetriCurvesShaderSrc = `//kage:unit pixels
package main

var HSLCurvesEnabled float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	c := imageSrc0At(src)
	if c.a > 0 {
		c.rgb /= c.a
	}
	r := imageSrc1At(vec2(c.r, 0.5)).r
	g := imageSrc1At(vec2(c.g, 0.5)).g
	b := imageSrc1At(vec2(c.b, 0.5)).b
	rgb := vec3(r, g, b)

	if HSLCurvesEnabled > 0.5 {
		luma := dot(rgb, vec3(0.2126, 0.7152, 0.0722))
		hueSatBias := imageSrc2At(vec2(rgb.r, 0.1)).r - 0.5
		hueHueBias := imageSrc2At(vec2(rgb.r, 0.3)).r - 0.5
		hueLumaBias := imageSrc2At(vec2(rgb.r, 0.5)).r - 0.5
		lumaSatBias := imageSrc2At(vec2(luma, 0.7)).r - 0.5
		satSatBias := imageSrc2At(vec2(luma, 0.9)).r - 0.5
		rgb += vec3(hueHueBias, hueHueBias, hueHueBias) * 0.1
		rgb += vec3(hueSatBias+lumaSatBias+satSatBias, hueSatBias+lumaSatBias+satSatBias, hueSatBias+lumaSatBias+satSatBias) * 0.1
		rgb += vec3(hueLumaBias, hueLumaBias, hueLumaBias) * 0.1
	}

	rgb = clamp(rgb, 0, 1)
	return vec4(rgb*c.a, c.a)
}
`

// lumetriSecondaryShaderSrc is the HSL keyer: a hue/sat/luma distance mask
// with a denoise threshold, applied either as a visualized mask ("show
// mask") or to blend a corrected copy over the source.
const lumetriSecondaryShaderSrc = `//kage:unit pixels
package main

var KeyHue float
var KeyHueRange float
var KeySaturation float
var KeySatRange float
var KeyLuma float
var KeyLumaRange float
var Denoise float
var ShowMask float
var CorrectionTemperature float
var CorrectionTint float
var CorrectionContrast float
var CorrectionSaturation float
var CorrectionSharpen float

func rgb2hsl(c vec3) vec3 {
	maxc := max(max(c.r, c.g), c.b)
	minc := min(min(c.r, c.g), c.b)
	l := (maxc + minc) * 0.5
	d := maxc - minc
	s := 0.0
	if d > 0.0001 {
		if l > 0.5 {
			s = d / (2.0 - maxc - minc)
		} else {
			s = d / (maxc + minc)
		}
	}
	h := 0.0
	if d > 0.0001 {
		if maxc == c.r {
			h = mod((c.g-c.b)/d, 6.0)
		} else if maxc == c.g {
			h = (c.b-c.r)/d + 2.0
		} else {
			h = (c.r-c.g)/d + 4.0
		}
		h /= 6.0
	}
	return vec3(h, s, l)
}

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	c := imageSrc0At(src)
	if c.a > 0 {
		c.rgb /= c.a
	}
	hsl := rgb2hsl(c.rgb)

	hueDist := abs(hsl.x - KeyHue)
	hueDist = min(hueDist, 1.0-hueDist)
	satDist := abs(hsl.y - KeySaturation)
	lumaDist := abs(hsl.z - KeyLuma)

	hueMask := 1.0 - smoothstep(KeyHueRange*0.8, KeyHueRange, hueDist)
	satMask := 1.0 - smoothstep(KeySatRange*0.8, KeySatRange, satDist)
	lumaMask := 1.0 - smoothstep(KeyLumaRange*0.8, KeyLumaRange, lumaDist)

	mask := hueMask * satMask * lumaMask
	mask = smoothstep(Denoise, Denoise+0.1, mask)

	if ShowMask > 0.5 {
		return vec4(mask, mask, mask, c.a)
	}

	corrected := c.rgb
	corrected.r += CorrectionTemperature * 0.15
	corrected.b -= CorrectionTemperature * 0.15
	corrected.g += CorrectionTint * -0.1
	corrected = (corrected-0.5)*CorrectionContrast + 0.5
	l := dot(corrected, vec3(0.2126, 0.7152, 0.0722))
	corrected = mix(vec3(l, l, l), corrected, CorrectionSaturation)
	corrected = clamp(corrected, 0, 1)

	rgb := mix(c.rgb, corrected, mask)
	return vec4(rgb*c.a, c.a)
}
`
