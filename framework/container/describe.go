package container

import (
	"errors"
	"fmt"
	"reflect"
)

var errorType = reflect.TypeFor[error]()

// ComponentOption configures a Descriptor built by Describe.
type ComponentOption func(b *describer)

type describer struct {
	d    Descriptor
	errs []error
}

// Describe builds the descriptor of concrete type T from plain Go
// constructor functions. It is the registration step that replaces
// annotation scanning: the container itself never inspects types.
//
//	d, err := container.Describe[*UserService](
//	    container.Inject(NewUserService),
//	    container.As[UserFinder](),
//	)
func Describe[T any](opts ...ComponentOption) (Descriptor, error) {
	t := reflect.TypeFor[T]()
	b := &describer{d: Descriptor{Type: t}}
	if t.Kind() == reflect.Interface {
		b.fail("[%s] is an interface; use Interface to declare abstract types", t)
	}
	for _, opt := range opts {
		opt(b)
	}
	if len(b.errs) > 0 {
		return Descriptor{}, fmt.Errorf("%w: %w", ErrInvalidDescriptor, errors.Join(b.errs...))
	}
	return b.d, nil
}

// MustDescribe is like Describe but panics on an invalid registration.
func MustDescribe[T any](opts ...ComponentOption) Descriptor {
	d, err := Describe[T](opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// Interface declares the abstract type I as a candidate.
func Interface[I any](markers ...Marker) Descriptor {
	return Descriptor{
		Type:     reflect.TypeFor[I](),
		Abstract: true,
		Markers:  append([]Marker(nil), markers...),
	}
}

// Inject registers fn as the injectable constructor. fn must have the shape
// func(deps...) T or func(deps...) (T, error).
func Inject(fn any) ComponentOption {
	return func(b *describer) { b.addConstructor(fn, true) }
}

// Default registers a zero-argument constructor, used when no injectable
// constructor is declared.
func Default(fn any) ComponentOption {
	return func(b *describer) {
		if ft := reflect.TypeOf(fn); ft != nil && ft.Kind() == reflect.Func && ft.NumIn() != 0 {
			b.fail("default constructor for [%s] takes %d arguments", b.d.Type, ft.NumIn())
			return
		}
		b.addConstructor(fn, false)
	}
}

// WithConstructor registers an additional, non-injectable constructor.
func WithConstructor(fn any) ComponentOption {
	return func(b *describer) { b.addConstructor(fn, false) }
}

// As declares that the component satisfies interface I.
func As[I any]() ComponentOption {
	return func(b *describer) {
		iface := reflect.TypeFor[I]()
		if iface.Kind() != reflect.Interface {
			b.fail("As[%s]: not an interface", iface)
			return
		}
		if !b.d.Type.Implements(iface) {
			b.fail("[%s] does not implement [%s]", b.d.Type, iface)
			return
		}
		b.d.Implements = append(b.d.Implements, iface)
	}
}

// Marked attaches markers to the component.
func Marked(markers ...Marker) ComponentOption {
	return func(b *describer) { b.d.Markers = append(b.d.Markers, markers...) }
}

func (b *describer) fail(format string, args ...any) {
	b.errs = append(b.errs, fmt.Errorf(format, args...))
}

func (b *describer) addConstructor(fn any, injectable bool) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		b.fail("constructor for [%s] is %T, not a function", b.d.Type, fn)
		return
	}
	ft := v.Type()
	if ft.IsVariadic() {
		b.fail("constructor %s for [%s] is variadic", ft, b.d.Type)
		return
	}
	switch {
	case ft.NumOut() == 1:
	case ft.NumOut() == 2 && ft.Out(1) == errorType:
	default:
		b.fail("constructor %s for [%s] must return T or (T, error)", ft, b.d.Type)
		return
	}
	if !ft.Out(0).AssignableTo(b.d.Type) {
		b.fail("constructor %s returns [%s], want [%s]", ft, ft.Out(0), b.d.Type)
		return
	}

	params := make([]reflect.Type, ft.NumIn())
	for i := range params {
		params[i] = ft.In(i)
	}
	b.d.Constructors = append(b.d.Constructors, Constructor{
		Params:     params,
		Injectable: injectable,
		New:        callFunc(v),
	})
}

// callFunc adapts a reflected constructor to Constructor.New.
func callFunc(fn reflect.Value) func(args []any) (any, error) {
	ft := fn.Type()
	return func(args []any) (any, error) {
		if len(args) != ft.NumIn() {
			return nil, fmt.Errorf("constructor %s: got %d arguments, want %d", ft, len(args), ft.NumIn())
		}
		in := make([]reflect.Value, len(args))
		for i, arg := range args {
			if arg == nil {
				in[i] = reflect.Zero(ft.In(i))
				continue
			}
			av := reflect.ValueOf(arg)
			if !av.Type().AssignableTo(ft.In(i)) {
				return nil, fmt.Errorf("constructor %s: argument %d is %s, want %s", ft, i, av.Type(), ft.In(i))
			}
			in[i] = av
		}

		out := fn.Call(in)
		if len(out) == 2 && !out[1].IsNil() {
			return nil, out[1].Interface().(error)
		}
		if isNil(out[0]) {
			return nil, nil
		}
		return out[0].Interface(), nil
	}
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	}
	return false
}
