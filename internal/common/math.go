package common

import (
	"math"

	"golang.org/x/exp/constraints"
)

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

func DegreesToRadians[T constraints.Float](degrees T) T {
	return degrees * T(degToRad)
}

func RadiansToDegrees[T constraints.Float](radians T) T {
	return radians * T(radToDeg)
}
