package shaderlib

// compositeShaderSrc applies intrinsic motion via a 3x3 matrix-vector
// product, crops by four edge ratios (discarded in the fragment shader),
// and multiplies by opacity. The motion matrix itself is computed in
// mathutil and supplied as a uniform; the shader only consumes it.
const compositeShaderSrc = `//kage:unit pixels
package main

var InverseMotion [9]float // row-major 3x3, maps dst pixel -> source pixel
var CropLeft float
var CropRight float
var CropTop float
var CropBottom float
var Opacity float
var SourceSize vec2

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	p := dst.xy
	sx := InverseMotion[0]*p.x + InverseMotion[1]*p.y + InverseMotion[2]
	sy := InverseMotion[3]*p.x + InverseMotion[4]*p.y + InverseMotion[5]
	w := InverseMotion[6]*p.x + InverseMotion[7]*p.y + InverseMotion[8]
	if w != 0 {
		sx /= w
		sy /= w
	}
	uv := vec2(sx, sy) / SourceSize
	if uv.x < CropLeft || uv.x > 1.0-CropRight || uv.y < CropTop || uv.y > 1.0-CropBottom {
		return vec4(0, 0, 0, 0)
	}
	c := imageSrc0At(vec2(sx, sy))
	return c * Opacity
}
`
