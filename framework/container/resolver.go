package container

import (
	"reflect"
	"slices"
	"strings"
)

// resolveConcrete maps a requested type to the concrete candidate that will
// be instantiated for it.
//
// A concrete candidate registered under t is returned as is. Anything else is
// treated as abstract: exactly one concrete candidate must declare t.
func (s *CandidateSet) resolveConcrete(t reflect.Type) (*Descriptor, error) {
	if d, ok := s.descriptor(t); ok && !d.Abstract {
		return d, nil
	}

	matches := s.Implementors(t)
	switch len(matches) {
	case 0:
		return nil, &NotFoundError{Type: t}
	case 1:
		d, _ := s.descriptor(matches[0])
		return d, nil
	default:
		slices.SortFunc(matches, func(a, b reflect.Type) int {
			return strings.Compare(a.String(), b.String())
		})
		return nil, &AmbiguousBindingError{Type: t, Candidates: matches}
	}
}

// selectConstructor picks the constructor used for injection: the single
// injectable one, otherwise the zero-argument one.
func selectConstructor(d *Descriptor) (*Constructor, error) {
	var injectable, noArg *Constructor
	count := 0
	for i := range d.Constructors {
		ctor := &d.Constructors[i]
		if ctor.Injectable {
			injectable = ctor
			count++
		}
		if len(ctor.Params) == 0 && noArg == nil {
			noArg = ctor
		}
	}

	switch {
	case count == 1:
		return injectable, nil
	case count > 1:
		return nil, &NoUsableConstructorError{Type: d.Type, Reason: "multiple injectable constructors"}
	case noArg != nil:
		return noArg, nil
	default:
		return nil, &NoUsableConstructorError{Type: d.Type, Reason: "no injectable or zero-argument constructor"}
	}
}
