package kernel

import (
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// minServiceAreaVertices is the smallest vertex count that forms a polygon.
const minServiceAreaVertices = 3

// ErrServiceAreaIsNotConstructed is returned when attempting to use an
// improperly initialized ServiceArea.
var ErrServiceAreaIsNotConstructed = errs.NewValueIsRequiredError(
	"service area must be created via NewServiceArea constructor")

// ServiceArea is the polygon within which an agent accepts pickups and
// dropoffs. It is an ordered sequence of at least three vertices, closed
// implicitly by wrap-around. ServiceArea is immutable once constructed.
type ServiceArea struct {
	vertices []Location
	guard    guard.ConstructorGuard
}

// NewServiceArea creates a ServiceArea from the given boundary vertices.
// Fails if fewer than three vertices are supplied or any vertex is invalid.
// The vertex slice is copied; later mutation of the argument has no effect.
func NewServiceArea(vertices []Location) (ServiceArea, error) {
	if len(vertices) < minServiceAreaVertices {
		return ServiceArea{}, errs.NewValueIsInvalidErrorWithCause("service area",
			fmt.Errorf("polygon requires at least %d vertices, got %d", minServiceAreaVertices, len(vertices)))
	}

	for i, vertex := range vertices {
		if err := vertex.Validate(); err != nil {
			return ServiceArea{}, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("service area vertex %d", i), err)
		}
	}

	owned := make([]Location, len(vertices))
	copy(owned, vertices)

	return ServiceArea{
		vertices: owned,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the ServiceArea was created through NewServiceArea.
func (s ServiceArea) Validate() error {
	return s.guard.Validate(ErrServiceAreaIsNotConstructed)
}

// Vertices returns a copy of the boundary vertices in order.
func (s ServiceArea) Vertices() []Location {
	snapshot := make([]Location, len(s.vertices))
	copy(snapshot, s.vertices)
	return snapshot
}

// Contains reports whether the point lies inside the polygon, using
// ray-casting parity: a horizontal ray from the point toggles inside/outside
// on each edge whose endpoint latitudes bracket the point's latitude, with
// the crossing longitude found by linear interpolation along the edge.
func (s ServiceArea) Contains(point Location) (bool, error) {
	if err := s.Validate(); err != nil {
		return false, err
	}
	if err := point.Validate(); err != nil {
		return false, err
	}

	inside := false
	for i, j := 0, len(s.vertices)-1; i < len(s.vertices); j, i = i, i+1 {
		vi, vj := s.vertices[i], s.vertices[j]

		intersects := (vi.Latitude() > point.Latitude()) != (vj.Latitude() > point.Latitude()) &&
			point.Longitude() < (vj.Longitude()-vi.Longitude())*
				(point.Latitude()-vi.Latitude())/(vj.Latitude()-vi.Latitude())+vi.Longitude()

		if intersects {
			inside = !inside
		}
	}

	return inside, nil
}
