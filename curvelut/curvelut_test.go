package curvelut

import (
	"math"
	"testing"
)

const epsilon = 1e-6

func TestBuildIdentityForFewerThanTwoPoints(t *testing.T) {
	lut := Build(nil)
	for i, v := range lut {
		want := float64(i) / float64(Size-1)
		if math.Abs(v-want) > epsilon {
			t.Fatalf("lut[%d] = %v, want %v", i, v, want)
		}
	}
	lut = Build([]Point{{X: 0.5, Y: 0.5}})
	for i, v := range lut {
		want := float64(i) / float64(Size-1)
		if math.Abs(v-want) > epsilon {
			t.Fatalf("single-point lut[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestBuildMonotoneForMonotoneControlPoints(t *testing.T) {
	lut := Build([]Point{{X: 0, Y: 0}, {X: 0.3, Y: 0.2}, {X: 0.7, Y: 0.8}, {X: 1, Y: 1}})
	for i := 1; i < len(lut); i++ {
		if lut[i] < lut[i-1]-1e-9 {
			t.Fatalf("lut not monotone at %d: %v -> %v", i, lut[i-1], lut[i])
		}
	}
	if math.Abs(lut[0]) > epsilon {
		t.Errorf("lut[0] = %v, want 0", lut[0])
	}
	if math.Abs(lut[Size-1]-1) > epsilon {
		t.Errorf("lut[last] = %v, want 1", lut[Size-1])
	}
}

func TestBuildOrderIndependent(t *testing.T) {
	a := Build([]Point{{X: 0, Y: 0}, {X: 0.5, Y: 0.5}, {X: 1, Y: 1}})
	b := Build([]Point{{X: 1, Y: 1}, {X: 0, Y: 0}, {X: 0.5, Y: 0.5}})
	for i := range a {
		if math.Abs(a[i]-b[i]) > epsilon {
			t.Fatalf("order dependence at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestBuildIdentityLine(t *testing.T) {
	lut := Build([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	for i, v := range lut {
		want := float64(i) / float64(Size-1)
		if math.Abs(v-want) > 1e-3 {
			t.Fatalf("identity-line lut[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestBuildCurveLUTTextureIdentity(t *testing.T) {
	identity := []Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
	buf := BuildCurveLUTTexture(identity, identity, identity, identity)
	if len(buf) != Size*4 {
		t.Fatalf("len = %d, want %d", len(buf), Size*4)
	}
	if buf[0] != 0 || buf[1] != 0 || buf[2] != 0 || buf[3] != 255 {
		t.Errorf("buf[0:4] = %v, want [0 0 0 255]", buf[0:4])
	}
	last := (Size - 1) * 4
	if buf[last] != 255 || buf[last+1] != 255 || buf[last+2] != 255 {
		t.Errorf("buf[last] = %v, want [255 255 255 255]", buf[last:last+4])
	}
}

func TestBuildHSLCurveLUTIdentityRows(t *testing.T) {
	var rows [HSLRowCount][]Point
	buf := BuildHSLCurveLUT(rows)
	if len(buf) != Size*HSLRowCount {
		t.Fatalf("len = %d, want %d", len(buf), Size*HSLRowCount)
	}
	for _, b := range buf {
		if b != 128 {
			t.Fatalf("expected all-identity rows to be 128, got %d", b)
		}
	}
}
