package construct_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cukexpr/construct"
)

type Color struct{ Name string }

type NoFactory struct{}

type FailingType struct{}

type Shape interface{ Area() float64 }

func newRegistry(t *testing.T) *construct.Registry {
	t.Helper()

	r := construct.NewRegistry()
	require.NoError(t, construct.Register(r, func(s string) (Color, error) {
		return Color{Name: s}, nil
	}))
	require.NoError(t, construct.Register(r, func(s string) (FailingType, error) {
		return FailingType{}, errors.New("Boo")
	}))

	return r
}

func TestConstruct(t *testing.T) {
	r := newRegistry(t)

	v, err := r.Construct(reflect.TypeOf(Color{}), "red")
	require.NoError(t, err)
	assert.Equal(t, Color{Name: "red"}, v)
}

func TestConstruct_MissingFactory(t *testing.T) {
	r := newRegistry(t)

	_, err := r.Construct(reflect.TypeOf(NoFactory{}), "whatevs")
	require.Error(t, err)
	assert.Equal(t, "missing factory: `func(string) (construct_test.NoFactory, error)`", err.Error())
	assert.ErrorIs(t, err, construct.ErrConstruction)
	assert.ErrorIs(t, err, construct.ErrMissingFactory)

	_, err = r.Bind(reflect.TypeOf(NoFactory{}))
	assert.ErrorIs(t, err, construct.ErrMissingFactory)
}

func TestConstruct_ReportsFactoryErrors(t *testing.T) {
	r := newRegistry(t)

	_, err := r.Construct(reflect.TypeOf(FailingType{}), "hello")
	require.Error(t, err)
	assert.Equal(t, "failed to invoke `construct_test.FailingType(\"hello\")`", err.Error())

	var ce *construct.ConstructionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "Boo", ce.Cause.Error())
}

func TestRegister_RejectsInterfaces(t *testing.T) {
	r := construct.NewRegistry()

	err := construct.Register(r, func(s string) (Shape, error) { return nil, nil })
	require.Error(t, err)
	assert.ErrorIs(t, err, construct.ErrNotInstantiable)
}

func TestRegister_RejectsDuplicates(t *testing.T) {
	r := newRegistry(t)

	err := construct.Register(r, func(s string) (Color, error) { return Color{}, nil })
	assert.Error(t, err)
}

func TestLookupName(t *testing.T) {
	r := newRegistry(t)

	typ, ok := r.LookupName("construct_test.Color")
	require.True(t, ok)
	assert.Equal(t, reflect.TypeOf(Color{}), typ)

	assert.Equal(t, []string{"construct_test.Color", "construct_test.FailingType"}, r.Names())
}

func TestNilRegistry(t *testing.T) {
	var r *construct.Registry

	_, ok := r.Lookup(reflect.TypeOf(Color{}))
	assert.False(t, ok)
	assert.Nil(t, r.Names())
}

func ExampleRegister() {
	type Money struct{ Cents int }

	factories := construct.NewRegistry()
	_ = construct.Register(factories, func(s string) (Money, error) {
		var m Money
		_, err := fmt.Sscanf(s, "%d", &m.Cents)
		return m, err
	})

	v, _ := factories.Construct(reflect.TypeOf(Money{}), "250")
	fmt.Printf("%+v\n", v)
	// Output:
	// {Cents:250}
}
