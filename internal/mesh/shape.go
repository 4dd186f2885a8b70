package mesh

import (
	"errors"
	"fmt"
	"strings"

	"icosphere-renderer/internal/mathutil"
)

// Vec3 is the vertex type.
type Vec3 = mathutil.Vec3

// Shape selects the base polyhedron.
type Shape int

const (
	Icosphere Shape = iota
	Cube
)

// MaxQuality bounds the subdivision depth accepted by Build: 10·4⁸+2 vertices.
const MaxQuality = 8

var (
	ErrInvalidQuality = errors.New("mesh: invalid quality")
	ErrUnknownShape   = errors.New("mesh: unknown shape")
)

func (s Shape) String() string {
	switch s {
	case Icosphere:
		return "icosphere"
	case Cube:
		return "cube"
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// ParseShape accepts "icosphere" (or "sphere", "icosahedron") and "cube", case-insensitively.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "icosphere", "sphere", "icosahedron":
		return Icosphere, nil
	case "cube":
		return Cube, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// CheckQuality reports whether quality is a usable subdivision depth.
func CheckQuality(quality int) error {
	if quality < 0 || quality > MaxQuality {
		return fmt.Errorf("%w: %d (want 0..%d)", ErrInvalidQuality, quality, MaxQuality)
	}
	return nil
}

// Build validates the selection and builds a fresh mesh. The cube has no subdivision
// levels; quality is still validated and recorded as 0.
func Build(shape Shape, quality int) (*Mesh, error) {
	if err := CheckQuality(quality); err != nil {
		return nil, err
	}
	switch shape {
	case Icosphere:
		return BuildIcosphere(quality), nil
	case Cube:
		return BuildCube(), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownShape, shape)
}
