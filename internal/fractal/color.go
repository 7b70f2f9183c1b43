package fractal

import "image/color"

// Channel maxima and breakpoints of the escape gradient.
const (
	maxRed   float32 = 225
	maxGreen float32 = 255
	maxBlue  float32 = 245

	firstSeg  float32 = 0.25
	secondSeg float32 = 0.10
	thirdSeg  float32 = 1 - firstSeg - secondSeg
)

// ToColor maps a normalized escape value to a colour.
//
// 0 means the point never escaped and maps to fully transparent black. Other
// values run through three linear segments: red to blue on (0, 0.25], blue to
// green on (0.25, 0.35] and green to purple on (0.35, 1]. Channels are
// truncated, not rounded.
func ToColor(v float32) color.RGBA {
	if v == 0 {
		return color.RGBA{}
	}

	var r, g, b float32
	switch {
	// red to blue
	case v <= firstSeg:
		r = maxRed * (1 - (1/firstSeg)*v)
		g = maxGreen * (0.3 / firstSeg) * v
		b = maxBlue * (1 / firstSeg) * v

	// blue to green
	case v <= firstSeg+secondSeg:
		v -= firstSeg
		r = 0
		g = maxGreen * (0.3 + (0.7/secondSeg)*v)
		b = maxBlue * (1 - (1/secondSeg)*v)

	// green to purple
	default:
		v -= firstSeg + secondSeg
		r = maxRed * (0.7 / thirdSeg) * v
		g = maxGreen * (1 - (1/thirdSeg)*v)
		b = maxBlue * (1 / thirdSeg) * v
	}

	return color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: 255}
}

// channel truncates f to a byte, saturating at both ends.
func channel(f float32) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 255:
		return 255
	default:
		return uint8(f)
	}
}
