// SPDX-License-Identifier: MIT
// Package: render
//
// attrs.go — random cosmetic attributes.

package render

import "fmt"

// Polygon holds Graphviz polygon node attributes.
type Polygon struct {
	Sides       int     // 5..10
	Distortion  float64 // [-1, 1)
	Orientation int     // 0..360
	Skew        float64 // [-1, 1)
}

// RandomColor returns a uniform "#RRGGBB" colour.
func RandomColor(r Rand) string {
	return fmt.Sprintf("#%06X", r.Intn(0x1000000))
}

// RandomPolygon draws polygon attributes in the ranges documented on Polygon.
func RandomPolygon(r Rand) Polygon {
	return Polygon{
		Sides:       5 + r.Intn(6),
		Distortion:  2*r.Float64() - 1,
		Orientation: r.Intn(361),
		Skew:        2*r.Float64() - 1,
	}
}
