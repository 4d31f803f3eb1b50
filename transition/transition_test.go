package transition

import "testing"

func TestActiveRangeCenterAlignment(t *testing.T) {
	start, end := ActiveRange(100, 10, AlignCenter, 0)
	if start != 95 || end != 105 {
		t.Fatalf("got [%d, %d), want [95, 105)", start, end)
	}
}

func TestActiveRangeStartAlignment(t *testing.T) {
	start, end := ActiveRange(100, 10, AlignStart, 0)
	if start != 100 || end != 110 {
		t.Fatalf("got [%d, %d), want [100, 110)", start, end)
	}
}

func TestActiveRangeEndAlignment(t *testing.T) {
	start, end := ActiveRange(100, 10, AlignEnd, 0)
	if start != 90 || end != 100 {
		t.Fatalf("got [%d, %d), want [90, 100)", start, end)
	}
}

func TestActiveRangeOffsetShifts(t *testing.T) {
	start, end := ActiveRange(100, 10, AlignStart, 5)
	if start != 105 || end != 115 {
		t.Fatalf("got [%d, %d), want [105, 115)", start, end)
	}
}

func TestActiveRangeInvalidCollapsesToPlaceholder(t *testing.T) {
	start, end := ActiveRange(50, 0, AlignStart, 0)
	if start != 50 || end != 51 {
		t.Fatalf("got [%d, %d), want [50, 51)", start, end)
	}
}

func TestProgressClampsToUnitRange(t *testing.T) {
	if p := Progress(95, 100, 110); p != 0 {
		t.Errorf("before start: got %v, want 0", p)
	}
	if p := Progress(115, 100, 110); p != 1 {
		t.Errorf("after end: got %v, want 1", p)
	}
	if p := Progress(105, 100, 110); p != 0.5 {
		t.Errorf("midpoint: got %v, want 0.5", p)
	}
}

// Scenario 6: two 1x1 images, red and blue, progress 0.5 -> (127, 0, 127, 255).
func TestCrossDissolveMidpoint(t *testing.T) {
	red := []Color{{R: 1, G: 0, B: 0, A: 1}}
	blue := []Color{{R: 0, G: 0, B: 1, A: 1}}
	out := Blend(Transition{Type: TypeCrossDissolve}, red, blue, 1, 1, 0.5)

	r := byte(out[0].R*255 + 0.5)
	g := byte(out[0].G*255 + 0.5)
	b := byte(out[0].B*255 + 0.5)
	a := byte(out[0].A*255 + 0.5)

	if !within(r, 127, 1) || g != 0 || !within(b, 127, 1) || a != 255 {
		t.Fatalf("got (%d,%d,%d,%d), want ~(127,0,127,255)", r, g, b, a)
	}
}

func within(v, want, tolerance byte) bool {
	if v > want {
		return v-want <= tolerance
	}
	return want-v <= tolerance
}

func TestDipToColorReachesDipAtMidpoint(t *testing.T) {
	black := Color{R: 0, G: 0, B: 0, A: 1}
	white := []Color{{R: 1, G: 1, B: 1, A: 1}}
	result := blendDipToColor(white, white, black, 0.5)
	if result[0] != black {
		t.Fatalf("expected dip color at p=0.5, got %+v", result[0])
	}
}

func TestWipeLeftRevealsIncomingProportionally(t *testing.T) {
	w, h := 10, 1
	out := make([]Color, w*h)
	in := make([]Color, w*h)
	for i := range out {
		out[i] = Color{R: 1}
		in[i] = Color{B: 1}
	}
	result := blendWipe(out, in, w, h, 0.5, wipeLeft)
	if result[0].B != 1 {
		t.Errorf("expected incoming frame revealed on the left at p=0.5")
	}
	if result[w-1].R != 1 {
		t.Errorf("expected outgoing frame still visible on the right at p=0.5")
	}
}
