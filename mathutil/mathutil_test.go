package mathutil

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestClamp(t *testing.T) {
	assertNear(t, "below", Clamp(-1, 0, 1), 0)
	assertNear(t, "above", Clamp(2, 0, 1), 1)
	assertNear(t, "inside", Clamp(0.5, 0, 1), 0.5)
}

func TestLerp(t *testing.T) {
	assertNear(t, "mid", Lerp(0, 10, 0.5), 5)
	assertNear(t, "start", Lerp(0, 10, 0), 0)
	assertNear(t, "end", Lerp(0, 10, 1), 10)
}

func TestSmoothstep(t *testing.T) {
	assertNear(t, "below", Smoothstep(0, 1, -1), 0)
	assertNear(t, "above", Smoothstep(0, 1, 2), 1)
	assertNear(t, "mid", Smoothstep(0, 1, 0.5), 0.5)
}

func TestComposeMotionIdentity(t *testing.T) {
	m := ComposeMotion(0, 0, 1, 1, 0, 0, 0, 100, 100)
	want := Affine2D{1, 0, 0, 1, 0, 0}
	for i := range m {
		if math.Abs(m[i]-want[i]) > epsilon {
			t.Errorf("m[%d] = %v, want %v", i, m[i], want[i])
		}
	}
}

func TestComposeMotionTranslate(t *testing.T) {
	m := ComposeMotion(10, 20, 1, 1, 0, 0, 0, 100, 100)
	x, y := m.Apply(0, 0)
	assertNear(t, "x", x, 10)
	assertNear(t, "y", y, 20)
}

func TestComposeMotionRotation90(t *testing.T) {
	m := ComposeMotion(0, 0, 1, 1, math.Pi/2, 0, 0, 100, 100)
	x, y := m.Apply(1, 0)
	assertNear(t, "x", x, 0)
	assertNear(t, "y", y, 1)
}

func TestMultiplyAndInvertRoundtrip(t *testing.T) {
	m := ComposeMotion(10, 5, 2, 3, math.Pi/6, 0.5, 0.5, 100, 100)
	inv := m.Invert()
	x, y := m.Apply(7, 11)
	ix, iy := inv.Apply(x, y)
	assertNear(t, "x", ix, 7)
	assertNear(t, "y", iy, 11)
}

func TestInvertSingular(t *testing.T) {
	m := Affine2D{0, 0, 0, 0, 5, 5}
	inv := m.Invert()
	if inv != Identity2D {
		t.Errorf("singular invert = %v, want identity", inv)
	}
}

func TestMat3InvertIdentity(t *testing.T) {
	m := Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
	inv, ok := m.Invert(1e-12)
	if !ok {
		t.Fatal("expected invertible")
	}
	for i := range inv {
		if math.Abs(inv[i]-m[i]) > epsilon {
			t.Errorf("inv[%d] = %v, want %v", i, inv[i], m[i])
		}
	}
}

func TestMat3InvertSingular(t *testing.T) {
	m := Mat3{1, 2, 3, 2, 4, 6, 3, 6, 9} // rank-1, singular
	_, ok := m.Invert(1e-12)
	if ok {
		t.Error("expected singular matrix to fail inversion")
	}
}

func TestMat3InvertRoundtrip(t *testing.T) {
	m := Mat3{2, 0, 1, 1, 3, 2, 0, 1, 1}
	inv, ok := m.Invert(1e-12)
	if !ok {
		t.Fatal("expected invertible")
	}
	v := [3]float64{1, 2, 3}
	mv := m.MulVec3(v)
	back := inv.MulVec3(mv)
	for i := range back {
		if math.Abs(back[i]-v[i]) > 1e-9 {
			t.Errorf("back[%d] = %v, want %v", i, back[i], v[i])
		}
	}
}

func TestLuma709(t *testing.T) {
	assertNear(t, "white", Luma709(1, 1, 1), 1)
	assertNear(t, "black", Luma709(0, 0, 0), 0)
	assertNear(t, "red", Luma709(1, 0, 0), 0.2126)
}
