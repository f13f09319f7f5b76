package container

import (
	"reflect"
	"slices"
)

// Marker is an opaque tag attached to a Descriptor. The container never uses
// markers for resolution, only for WithMarker queries.
type Marker string

// MarkerController tags request handlers, mirroring @Controller.
const MarkerController Marker = "controller"

// Constructor is one way to build a concrete type.
//
// New receives the resolved instances for Params, in order. Injectable marks
// the constructor the container should prefer for injection.
type Constructor struct {
	Params     []reflect.Type
	Injectable bool
	New        func(args []any) (any, error)
}

// Descriptor is the metadata the container knows about one candidate type.
// It is produced once by an external registration step and treated as
// immutable afterwards.
type Descriptor struct {
	// Type is the identity of the candidate.
	Type reflect.Type

	// Abstract types are never instantiated; they resolve to the single
	// concrete candidate that declares them in Implements.
	Abstract bool

	// Implements lists the abstract types this concrete type satisfies.
	Implements []reflect.Type

	Constructors []Constructor

	Markers []Marker
}

// HasMarker reports whether d carries m.
func (d Descriptor) HasMarker(m Marker) bool {
	return slices.Contains(d.Markers, m)
}

// Satisfies reports whether d declares t as one of its capabilities.
func (d Descriptor) Satisfies(t reflect.Type) bool {
	return slices.Contains(d.Implements, t)
}

// clone returns a deep copy so that a published descriptor cannot be
// mutated through a slice shared with the caller.
func (d Descriptor) clone() Descriptor {
	out := d
	out.Implements = slices.Clone(d.Implements)
	out.Markers = slices.Clone(d.Markers)
	out.Constructors = make([]Constructor, len(d.Constructors))
	for i, ctor := range d.Constructors {
		ctor.Params = slices.Clone(ctor.Params)
		out.Constructors[i] = ctor
	}
	return out
}
