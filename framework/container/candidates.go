package container

import (
	"errors"
	"fmt"
	"reflect"
)

// CandidateSet is the fixed collection of descriptors a Container may
// instantiate. It is never mutated after NewCandidateSet returns, so reads
// need no locking.
type CandidateSet struct {
	byType map[reflect.Type]*Descriptor
	order  []reflect.Type
}

// NewCandidateSet validates descs and freezes them into a set.
// Every duplicate identity and every descriptor without a type is reported.
func NewCandidateSet(descs ...Descriptor) (*CandidateSet, error) {
	s := &CandidateSet{
		byType: make(map[reflect.Type]*Descriptor, len(descs)),
		order:  make([]reflect.Type, 0, len(descs)),
	}

	var errs []error
	for i, d := range descs {
		if d.Type == nil {
			errs = append(errs, fmt.Errorf("%w: descriptor #%d has no type", ErrInvalidDescriptor, i))
			continue
		}
		if _, dup := s.byType[d.Type]; dup {
			errs = append(errs, fmt.Errorf("%w: [%s]", ErrDuplicateCandidate, typeName(d.Type)))
			continue
		}
		cp := d.clone()
		s.byType[d.Type] = &cp
		s.order = append(s.order, d.Type)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return s, nil
}

// Lookup returns the descriptor registered under t.
func (s *CandidateSet) Lookup(t reflect.Type) (Descriptor, bool) {
	d, ok := s.byType[t]
	if !ok {
		return Descriptor{}, false
	}
	return d.clone(), true
}

// Len returns the number of candidates.
func (s *CandidateSet) Len() int { return len(s.order) }

// Types returns candidate identities in registration order.
func (s *CandidateSet) Types() []reflect.Type {
	out := make([]reflect.Type, len(s.order))
	copy(out, s.order)
	return out
}

// Descriptors returns a copy of every descriptor in registration order.
func (s *CandidateSet) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(s.order))
	for _, t := range s.order {
		out = append(out, s.byType[t].clone())
	}
	return out
}

// Implementors returns the concrete candidates declaring t as a capability,
// in registration order.
func (s *CandidateSet) Implementors(t reflect.Type) []reflect.Type {
	var out []reflect.Type
	for _, ct := range s.order {
		d := s.byType[ct]
		if !d.Abstract && d.Satisfies(t) {
			out = append(out, ct)
		}
	}
	return out
}

// descriptor returns the stored descriptor without copying. Internal
// callers must not mutate it.
func (s *CandidateSet) descriptor(t reflect.Type) (*Descriptor, bool) {
	d, ok := s.byType[t]
	return d, ok
}
