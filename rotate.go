package fadedrect

import "image"

// Rotation is a quarter-turn rotation on the pixel grid.
type Rotation uint8

const (
	Rotate0 Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

// RotatePoint rotates p by rotation about center. Quarter turns are exact
// on the integer grid, so the result carries no rounding error.
func RotatePoint(p image.Point, rotation Rotation, center image.Point) image.Point {
	rel := p.Sub(center)
	var rotated image.Point
	switch rotation {
	case Rotate90:
		rotated = image.Point{X: -rel.Y, Y: rel.X}
	case Rotate180:
		rotated = image.Point{X: -rel.X, Y: -rel.Y}
	case Rotate270:
		rotated = image.Point{X: rel.Y, Y: -rel.X}
	default:
		rotated = rel
	}
	return rotated.Add(center)
}
