// Package trigonometry evaluates trigonometric functions on angles given in degrees.
package trigonometry

import (
	"math"

	"mymath/internal/common"
)

// Sin returns the sine of an angle given in degrees.
//
// The input is not range checked. NaN and infinite angles yield NaN.
func Sin(degrees float64) float64 {
	return math.Sin(common.DegreesToRadians(degrees))
}
