package shaderlib

// Separable gaussian blur: weight exp(-0.5*x^2/max((radius/2)^2, 0.001)),
// summed then normalized, per the spec's fragment-shader contract.
//
// Kage requires for-loop bounds to be compile-time constants, so the tap
// loop runs a fixed maxTaps range and skips any tap beyond the uniform
// Radius rather than looping -int(Radius)..int(Radius).
const gaussianBlurHShaderSrc = `//kage:unit pixels
package main

const maxTaps = 64

var Radius float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	sigma := max(Radius/2.0, 0.001)
	sigma2 := sigma * sigma
	sum := vec4(0, 0, 0, 0)
	wsum := 0.0
	for i := -maxTaps; i <= maxTaps; i++ {
		x := float(i)
		if abs(x) > Radius {
			continue
		}
		w := exp(-0.5 * x * x / sigma2)
		sum += imageSrc0At(src+vec2(x, 0)) * w
		wsum += w
	}
	if wsum <= 0 {
		return imageSrc0At(src)
	}
	return sum / wsum
}
`

const gaussianBlurVShaderSrc = `//kage:unit pixels
package main

const maxTaps = 64

var Radius float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	sigma := max(Radius/2.0, 0.001)
	sigma2 := sigma * sigma
	sum := vec4(0, 0, 0, 0)
	wsum := 0.0
	for i := -maxTaps; i <= maxTaps; i++ {
		y := float(i)
		if abs(y) > Radius {
			continue
		}
		w := exp(-0.5 * y * y / sigma2)
		sum += imageSrc0At(src+vec2(0, y)) * w
		wsum += w
	}
	if wsum <= 0 {
		return imageSrc0At(src)
	}
	return sum / wsum
}
`
