package roto

import "github.com/phanxgames/willow-compositor/mathutil"

// colorModel is a Gaussian color model: a mean and an inverted, regularized
// 3x3 covariance matrix, ready for Mahalanobis distance queries.
type colorModel struct {
	mean    [3]float64
	covInv  mathutil.Mat3
	valid   bool
}

// fitColorModel computes the mean and regularized-inverted covariance of
// samples. Fewer than 4 samples, or a covariance whose determinant
// magnitude is below 1e-12, makes the model degenerate (spec §4.4).
func fitColorModel(samples [][3]float64) colorModel {
	if len(samples) < 4 {
		return colorModel{}
	}
	var mean [3]float64
	for _, s := range samples {
		mean[0] += s[0]
		mean[1] += s[1]
		mean[2] += s[2]
	}
	n := float64(len(samples))
	mean[0] /= n
	mean[1] /= n
	mean[2] /= n

	var cov mathutil.Mat3
	for _, s := range samples {
		d := [3]float64{s[0] - mean[0], s[1] - mean[1], s[2] - mean[2]}
		cov[0] += d[0] * d[0]
		cov[1] += d[0] * d[1]
		cov[2] += d[0] * d[2]
		cov[3] += d[1] * d[0]
		cov[4] += d[1] * d[1]
		cov[5] += d[1] * d[2]
		cov[6] += d[2] * d[0]
		cov[7] += d[2] * d[1]
		cov[8] += d[2] * d[2]
	}
	for i := range cov {
		cov[i] /= n
	}
	cov = cov.AddScalarDiag(1)

	inv, ok := cov.Invert(1e-12)
	if !ok {
		return colorModel{}
	}
	return colorModel{mean: mean, covInv: inv, valid: true}
}

// mahalanobis returns the Mahalanobis distance of c from the model.
func (m colorModel) mahalanobis(c [3]float64) float64 {
	d := [3]float64{c[0] - m.mean[0], c[1] - m.mean[1], c[2] - m.mean[2]}
	md := m.covInv.MulVec3(d)
	return mathutil.Dot3(d, md)
}

// estimateAlpha fills in the unknown region of trimap with a
// Mahalanobis-distance-based alpha estimate, using FG/BG color samples
// drawn from definite pixels within 2px of an unknown pixel.
func estimateAlpha(src *Source, trimap *Matte) *Matte {
	w, h := src.Width, src.Height
	out := NewMatte(w, h)

	fgSamples, bgSamples := collectSamples(src, trimap)
	fgModel := fitColorModel(fgSamples)
	bgModel := fitColorModel(bgSamples)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := trimap.at(x, y)
			switch v {
			case TrimapFG:
				out.set(x, y, 1)
			case TrimapBG:
				out.set(x, y, 0)
			default:
				out.set(x, y, estimatePixelAlpha(src.at(x, y), fgModel, bgModel))
			}
		}
	}
	return out
}

func estimatePixelAlpha(c [3]float64, fg, bg colorModel) float64 {
	if !fg.valid || !bg.valid {
		return 0.5
	}
	dFG := fg.mahalanobis(c)
	dBG := bg.mahalanobis(c)
	denom := dFG + dBG
	if denom < 1e-6 {
		return 0.5
	}
	return mathutil.Clamp01(dBG / denom)
}

// collectSamples gathers definite FG/BG pixel colors that lie within 2px of
// an unknown trimap pixel.
func collectSamples(src *Source, trimap *Matte) (fg, bg [][3]float64) {
	w, h := trimap.Width, trimap.Height
	const radius = 2
	near := func(x, y int) bool {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if trimap.at(x+dx, y+dy) == TrimapUnknown {
					return true
				}
			}
		}
		return false
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := trimap.at(x, y)
			if v != TrimapFG && v != TrimapBG {
				continue
			}
			if !near(x, y) {
				continue
			}
			c := src.at(x, y)
			if v == TrimapFG {
				fg = append(fg, c)
			} else {
				bg = append(bg, c)
			}
		}
	}
	return fg, bg
}
