// SPDX-License-Identifier: MIT

// Package coords converts Cartesian vectors to polar, spherical and
// cylindrical coordinates. Angles are in radians; azimuths come from
// math.Atan2 and lie in (−π, π].
package coords

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/blueberrymath/vector"
)

// ErrDimension is returned when a sequence has the wrong dimension for the
// requested coordinate system (2 for polar, 3 for spherical and cylindrical).
var ErrDimension = errors.New("coords: wrong dimension")

// Polar is a 2-D point as radius and angle from the positive x-axis.
type Polar struct {
	R, Theta float64
}

// Spherical is a 3-D point as radius, polar angle θ ∈ [0, π] measured from
// the positive z-axis, and azimuth φ in the xy-plane.
type Spherical struct {
	R, Theta, Phi float64
}

// Cylindrical is a 3-D point as distance ρ from the z-axis, azimuth φ and height z.
type Cylindrical struct {
	Rho, Phi, Z float64
}

// elements returns the sequence values after checking the dimension.
func elements(op string, s vector.Sequence, want int) ([]float64, error) {
	if s == nil {
		return nil, fmt.Errorf("%s: nil sequence: %w", op, ErrDimension)
	}
	if d := s.Dim(); d != want {
		return nil, fmt.Errorf("%s: want %d-D, got %d-D: %w", op, want, d, ErrDimension)
	}

	return s.Elements(), nil
}

// ToPolar converts a 2-D vector to (r, θ) with θ = atan2(y, x).
// Errors: ErrDimension.
func ToPolar(s vector.Sequence) (Polar, error) {
	e, err := elements("ToPolar", s, 2)
	if err != nil {
		return Polar{}, err
	}

	return Polar{R: math.Hypot(e[0], e[1]), Theta: math.Atan2(e[1], e[0])}, nil
}

// ToSpherical converts a 3-D vector to (r, θ, φ) with θ = acos(z/r) and
// φ = atan2(y, x). The origin maps to the zero value.
// Errors: ErrDimension.
func ToSpherical(s vector.Sequence) (Spherical, error) {
	e, err := elements("ToSpherical", s, 3)
	if err != nil {
		return Spherical{}, err
	}
	r := math.Sqrt(e[0]*e[0] + e[1]*e[1] + e[2]*e[2])
	if r == 0 {
		return Spherical{}, nil // θ undefined at the origin
	}
	// z/r can drift past ±1 by an ulp; clamp before Acos.
	cos := math.Max(-1, math.Min(1, e[2]/r))

	return Spherical{R: r, Theta: math.Acos(cos), Phi: math.Atan2(e[1], e[0])}, nil
}

// ToCylindrical converts a 3-D vector to (ρ, φ, z).
// Errors: ErrDimension.
func ToCylindrical(s vector.Sequence) (Cylindrical, error) {
	e, err := elements("ToCylindrical", s, 3)
	if err != nil {
		return Cylindrical{}, err
	}

	return Cylindrical{Rho: math.Hypot(e[0], e[1]), Phi: math.Atan2(e[1], e[0]), Z: e[2]}, nil
}
