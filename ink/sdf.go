package ink

import "math"

// sdfAntialiasWidth controls the smoothstep transition width in pixels.
// A value of 0.7 produces smooth anti-aliasing at standard DPI.
const sdfAntialiasWidth = 0.7

// segmentCoverage computes anti-aliased coverage for a round-capped
// line segment from a to b with the given half-width.
//
// The signed distance is the distance from the pixel center to the
// closest point on the segment, minus halfWidth. Round caps fall out
// of the formula: the distance field of a segment is naturally capped
// by discs at both endpoints.
//
// Returns a coverage value in [0, 1] where 1 means fully inside.
func segmentCoverage(px, py float64, a, b Point, halfWidth float64) float64 {
	pa := Pt(px, py).Sub(a)
	ba := b.Sub(a)

	// Project onto the segment, clamped to [0, 1].
	denom := ba.Dot(ba)
	t := 0.0
	if denom > 0 {
		t = pa.Dot(ba) / denom
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}

	dist := pa.Sub(ba.Mul(t)).Length()
	return smoothstepCoverage(dist - halfWidth)
}

// discCoverage computes anti-aliased coverage for a filled disc,
// used for the round cap stamped at stroke begin.
func discCoverage(px, py float64, center Point, radius float64) float64 {
	dist := math.Hypot(px-center.X, py-center.Y)
	return smoothstepCoverage(dist - radius)
}

// smoothstepCoverage converts a signed distance to an anti-aliased
// coverage value in [0, 1].
func smoothstepCoverage(sdf float64) float64 {
	if sdf <= -sdfAntialiasWidth {
		return 1
	}
	if sdf >= sdfAntialiasWidth {
		return 0
	}
	t := (sdf + sdfAntialiasWidth) / (2 * sdfAntialiasWidth)
	// Hermite smoothstep: 3t^2 - 2t^3
	return 1 - (t * t * (3 - 2*t))
}
