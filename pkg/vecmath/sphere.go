package vecmath

import "github.com/chewxy/math32"

// LatLonFromNormal maps a unit normal to (lat, lon) in [0,1]x[0,1].
// lat is 0 at the south pole and 1 at the north pole; lon wraps around Y.
func LatLonFromNormal(n Vec3) (lat, lon float32) {
	lat = 0.5 + math32.Asin(Clamp(n.Y, -1, 1))/Pi
	lon = 0.5 + math32.Atan2(n.Z, n.X)/(2*Pi)
	return lat, lon
}

// RimTerm returns (1 - clamp(n·(-v), -1, 1))^power, an edge brightening factor
func RimTerm(n, v Vec3, power float32) float32 {
	return math32.Pow(1-Clamp(n.Dot(v.Neg()), -1, 1), power)
}
