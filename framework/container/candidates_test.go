package container_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-beans/framework/container"
)

func TestNewCandidateSet_Duplicates(t *testing.T) {
	_, err := container.NewCandidateSet(english(), english(), container.Descriptor{})
	require.Error(t, err)
	assert.ErrorIs(t, err, container.ErrDuplicateCandidate)
	assert.ErrorIs(t, err, container.ErrInvalidDescriptor)
}

func TestCandidateSet_LookupAndOrder(t *testing.T) {
	set, err := container.NewCandidateSet(container.Interface[Greeter](), english())
	require.NoError(t, err)

	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []reflect.Type{reflect.TypeFor[Greeter](), reflect.TypeFor[*englishGreeter]()}, set.Types())

	d, ok := set.Lookup(reflect.TypeFor[Greeter]())
	require.True(t, ok)
	assert.True(t, d.Abstract)

	_, ok = set.Lookup(reflect.TypeFor[*frenchGreeter]())
	assert.False(t, ok)

	assert.Equal(t, []reflect.Type{reflect.TypeFor[*englishGreeter]()}, set.Implementors(reflect.TypeFor[Greeter]()))
	assert.Empty(t, set.Implementors(reflect.TypeFor[*beanA]()))
}

func TestCandidateSet_IsImmutable(t *testing.T) {
	d := english()
	set, err := container.NewCandidateSet(d)
	require.NoError(t, err)

	// Mutating the caller's copy or a returned copy must not leak in.
	d.Markers = append(d.Markers, "late")
	d.Implements[0] = reflect.TypeFor[*beanA]()
	got := set.Descriptors()
	got[0].Markers = append(got[0].Markers, "later")

	stored, _ := set.Lookup(reflect.TypeFor[*englishGreeter]())
	assert.Empty(t, stored.Markers)
	assert.Equal(t, []reflect.Type{reflect.TypeFor[Greeter]()}, stored.Implements)
}

func TestCatalog_Freeze(t *testing.T) {
	cat := container.NewCatalog().
		Add(english()).
		Include(container.Describe[*beanC](container.Default(func() *beanC { return &beanC{} })))
	assert.Equal(t, 2, cat.Len())

	set, err := cat.Freeze()
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
}

func TestCatalog_FreezeReportsRegistrationErrors(t *testing.T) {
	cat := container.NewCatalog().
		Include(container.Describe[*beanC](container.As[Greeter]()))

	_, err := cat.Freeze()
	assert.ErrorIs(t, err, container.ErrInvalidDescriptor)
}
