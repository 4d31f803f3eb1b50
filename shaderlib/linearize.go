package shaderlib

// Input linearization passes convert a camera log/gamma curve to scene-linear
// light before the effect chain runs. Each curve gets its own pass since the
// transfer function differs per vendor; the constants below follow each
// manufacturer's published log-curve formula.

const linearizeSRGBShaderSrc = `//kage:unit pixels
package main

func toLinear(c float) float {
	if c <= 0.04045 {
		return c / 12.92
	}
	return pow((c+0.055)/1.055, 2.4)
}

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	c := imageSrc0At(src)
	if c.a > 0 {
		c.rgb /= c.a
	}
	rgb := vec3(toLinear(c.r), toLinear(c.g), toLinear(c.b))
	return vec4(rgb*c.a, c.a)
}
`

const linearizeSLog3ShaderSrc = `//kage:unit pixels
package main

func toLinear(x float) float {
	if x >= 171.2102946929/1023.0 {
		return (pow(10.0, (x*1023.0-420.0)/261.5) * (0.18 + 0.01) - 0.01)
	}
	return (x*1023.0 - 95.0) * 0.01125000/(171.2102946929-95.0)
}

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	c := imageSrc0At(src)
	if c.a > 0 {
		c.rgb /= c.a
	}
	rgb := vec3(toLinear(c.r), toLinear(c.g), toLinear(c.b))
	return vec4(max(rgb, 0)*c.a, c.a)
}
`

const linearizeCLogShaderSrc = `//kage:unit pixels
package main

func toLinear(x float) float {
	return (pow(10.0, (x-0.073059361)/0.529136) - 1.0) / 10.1596
}

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	c := imageSrc0At(src)
	if c.a > 0 {
		c.rgb /= c.a
	}
	rgb := vec3(toLinear(c.r), toLinear(c.g), toLinear(c.b))
	return vec4(max(rgb, 0)*c.a, c.a)
}
`

const linearizeCLog3ShaderSrc = `//kage:unit pixels
package main

func toLinear(x float) float {
	if x < 0.04076162 {
		return (x - 0.092864125) / 2.3069815
	}
	return (pow(10.0, (x-0.42460422)/0.42606) - 1.0) / 14.98325
}

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	c := imageSrc0At(src)
	if c.a > 0 {
		c.rgb /= c.a
	}
	rgb := vec3(toLinear(c.r), toLinear(c.g), toLinear(c.b))
	return vec4(max(rgb, 0)*c.a, c.a)
}
`

const linearizeVLogShaderSrc = `//kage:unit pixels
package main

func toLinear(x float) float {
	if x < 0.181 {
		return (x - 0.125) / 5.6
	}
	return (pow(10.0, (x-0.598206)/0.241514) - 0.00873) / 1.0
}

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	c := imageSrc0At(src)
	if c.a > 0 {
		c.rgb /= c.a
	}
	rgb := vec3(toLinear(c.r), toLinear(c.g), toLinear(c.b))
	return vec4(max(rgb, 0)*c.a, c.a)
}
`

const linearizeLogC3ShaderSrc = `//kage:unit pixels
package main

func toLinear(x float) float {
	if x > 0.1496582 {
		return (pow(10.0, (x-0.385537)/0.247190) - 0.052272) / 5.555556
	}
	return (x - 0.092809) / 5.367655
}

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	c := imageSrc0At(src)
	if c.a > 0 {
		c.rgb /= c.a
	}
	rgb := vec3(toLinear(c.r), toLinear(c.g), toLinear(c.b))
	return vec4(max(rgb, 0)*c.a, c.a)
}
`

const linearizeLogC4ShaderSrc = `//kage:unit pixels
package main

func toLinear(x float) float {
	a := (pow(2.0, (x-0.092809)/0.2471896) - 64.0) / 2231.8263
	return a - 0.0108
}

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	c := imageSrc0At(src)
	if c.a > 0 {
		c.rgb /= c.a
	}
	rgb := vec3(toLinear(c.r), toLinear(c.g), toLinear(c.b))
	return vec4(max(rgb, 0)*c.a, c.a)
}
`

const linearizeNLogShaderSrc = `//kage:unit pixels
package main

func toLinear(x float) float {
	if x < 0.328 {
		return (exp((x-0.0075)/0.0526315789)-0.0526315789 - 1.0) / 650.0
	}
	return (exp((x-0.619201)/0.149658) - 0.0075) / 1.0
}

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	c := imageSrc0At(src)
	if c.a > 0 {
		c.rgb /= c.a
	}
	rgb := vec3(toLinear(c.r), toLinear(c.g), toLinear(c.b))
	return vec4(max(rgb, 0)*c.a, c.a)
}
`

const toneMapReinhardShaderSrc = `//kage:unit pixels
package main

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	c := imageSrc0At(src)
	if c.a > 0 {
		c.rgb /= c.a
	}
	rgb := c.rgb / (vec3(1, 1, 1) + c.rgb)
	return vec4(clamp(rgb, 0, 1)*c.a, c.a)
}
`

const toneMapACESShaderSrc = `//kage:unit pixels
package main

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	c := imageSrc0At(src)
	if c.a > 0 {
		c.rgb /= c.a
	}
	a := 2.51
	b := 0.03
	cc := 2.43
	d := 0.59
	e := 0.14
	rgb := (c.rgb*(a*c.rgb+b)) / (c.rgb*(cc*c.rgb+d) + e)
	return vec4(clamp(rgb, 0, 1)*c.a, c.a)
}
`
