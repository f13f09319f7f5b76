package container

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Sentinels matched by the typed errors below via errors.Is.
var (
	ErrNotFound            = errors.New("container: no candidate found")
	ErrAmbiguousBinding    = errors.New("container: ambiguous binding")
	ErrNoUsableConstructor = errors.New("container: no usable constructor")
	ErrCyclicDependency    = errors.New("container: cyclic dependency")
	ErrBeanCreation        = errors.New("container: bean creation failed")

	ErrDuplicateCandidate = errors.New("container: duplicate candidate")
	ErrInvalidDescriptor  = errors.New("container: invalid descriptor")
)

// NotFoundError reports a requested type with no satisfying candidate.
type NotFoundError struct {
	Type reflect.Type
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("container: no candidate found for [%s]", typeName(e.Type))
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// AmbiguousBindingError reports an abstract type satisfied by more than one
// candidate. Candidates is sorted by type name.
type AmbiguousBindingError struct {
	Type       reflect.Type
	Candidates []reflect.Type
}

func (e *AmbiguousBindingError) Error() string {
	return fmt.Sprintf("container: [%s] is implemented by %d candidates: %s",
		typeName(e.Type), len(e.Candidates), joinTypes(e.Candidates, ", "))
}

func (e *AmbiguousBindingError) Is(target error) bool { return target == ErrAmbiguousBinding }

// NoUsableConstructorError reports a concrete type that has neither a single
// injectable constructor nor a zero-argument one.
type NoUsableConstructorError struct {
	Type   reflect.Type
	Reason string
}

func (e *NoUsableConstructorError) Error() string {
	return fmt.Sprintf("container: no usable constructor for [%s]: %s", typeName(e.Type), e.Reason)
}

func (e *NoUsableConstructorError) Is(target error) bool { return target == ErrNoUsableConstructor }

// CyclicDependencyError reports a resolution that re-entered a type already
// under construction. Cycle starts and ends with the repeated type.
type CyclicDependencyError struct {
	Cycle []reflect.Type
}

func (e *CyclicDependencyError) Error() string {
	return "container: dependency cycle: " + joinTypes(e.Cycle, " -> ")
}

func (e *CyclicDependencyError) Is(target error) bool { return target == ErrCyclicDependency }

// BeanCreationError wraps any failure met while building Type.
type BeanCreationError struct {
	Type  reflect.Type
	Cause error
}

func (e *BeanCreationError) Error() string {
	return fmt.Sprintf("container: creating [%s]: %v", typeName(e.Type), e.Cause)
}

func (e *BeanCreationError) Unwrap() error { return e.Cause }

func (e *BeanCreationError) Is(target error) bool { return target == ErrBeanCreation }

// ── helpers ───────────────────────────────────────────────────────────────────

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

func joinTypes(types []reflect.Type, sep string) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = typeName(t)
	}
	return strings.Join(names, sep)
}
