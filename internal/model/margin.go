package model

import "math"

// InchesPerFoot converts separation distances to seat widths.
const InchesPerFoot = 12

// MarginForSeparation returns how many seats of the given width cover the
// separation distance, rounded up. Non-positive inputs yield 0.
func MarginForSeparation(separationFeet, seatWidthInches float64) int {
	if separationFeet <= 0 || seatWidthInches <= 0 {
		return 0
	}
	return int(math.Ceil(separationFeet * InchesPerFoot / seatWidthInches))
}
