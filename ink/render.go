package ink

import "math"

// stampSegment renders one round-capped stroke segment from a to b
// onto pm. Only pixels inside the segment's padded bounding box are
// visited, so incremental per-move rendering stays cheap.
func stampSegment(pm *Pixmap, a, b Point, style StrokeStyle) {
	half := style.Width / 2
	pad := half + sdfAntialiasWidth + 1

	x0, y0, x1, y1 := stampBounds(pm,
		math.Min(a.X, b.X)-pad, math.Min(a.Y, b.Y)-pad,
		math.Max(a.X, b.X)+pad, math.Max(a.Y, b.Y)+pad)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			cov := segmentCoverage(float64(x)+0.5, float64(y)+0.5, a, b, half)
			if cov > 0 {
				blendMax(pm, x, y, style.Color, cov)
			}
		}
	}
}

// stampCap renders the round cap disc at the start of a stroke so
// that a tap without movement still leaves a mark.
func stampCap(pm *Pixmap, center Point, style StrokeStyle) {
	if style.Cap != LineCapRound {
		return
	}
	half := style.Width / 2
	pad := half + sdfAntialiasWidth + 1

	x0, y0, x1, y1 := stampBounds(pm,
		center.X-pad, center.Y-pad, center.X+pad, center.Y+pad)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			cov := discCoverage(float64(x)+0.5, float64(y)+0.5, center, half)
			if cov > 0 {
				blendMax(pm, x, y, style.Color, cov)
			}
		}
	}
}

// stampBounds clips a float bounding box to pixmap pixel coordinates.
func stampBounds(pm *Pixmap, minX, minY, maxX, maxY float64) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(minX))
	y0 = int(math.Floor(minY))
	x1 = int(math.Ceil(maxX))
	y1 = int(math.Ceil(maxY))
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > pm.Width()-1 {
		x1 = pm.Width() - 1
	}
	if y1 > pm.Height()-1 {
		y1 = pm.Height() - 1
	}
	return x0, y0, x1, y1
}

// blendMax writes the ink color keeping the stronger of the existing
// and incoming alpha. Consecutive segments of a stroke overlap at
// their shared joint; with uniform ink, max-alpha blending joins them
// without double-darkened seams.
func blendMax(pm *Pixmap, x, y int, c RGBA, cov float64) {
	alpha := cov * c.A
	if alpha <= pm.GetPixel(x, y).A {
		return
	}
	pm.SetPixel(x, y, c.WithAlpha(alpha))
}
