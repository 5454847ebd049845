package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapKeyLaw_IntAndFloatUnify(t *testing.T) {
	m := NewMap()
	require.NoError(t, m.Set(NewInt(1), NewString("a")))

	got, err := m.Get(NewFloat(1.0))
	require.NoError(t, err)
	assert.Equal(t, "a", got.(*String).Value)

	require.NoError(t, m.Set(NewFloat(1.0), NewString("b")))
	got, err = m.Get(NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, "b", got.(*String).Value, "writing through the float key must update the same slot")
	assert.Equal(t, 1, m.Len(), "unifying Int/Float must not create two slots")
}

func TestMap_MissingKeyReturnsNull(t *testing.T) {
	m := NewMap()
	got, err := m.Get(NewString("missing"))
	require.NoError(t, err)
	assert.Same(t, NullValue, got)
}

func TestMap_UnhashableKeyErrors(t *testing.T) {
	m := NewMap()
	_, err := m.Get(NewList(nil))
	assert.Error(t, err)
}

func TestMap_InsertionOrderPreservedForDisplay(t *testing.T) {
	m := NewMap()
	require.NoError(t, m.Set(NewString("z"), NewInt(1)))
	require.NoError(t, m.Set(NewString("a"), NewInt(2)))
	assert.Equal(t, `{ "z": 1, "a": 2 }`, m.Display())
}

func TestTruthiness(t *testing.T) {
	assert.False(t, IsTruthy(NullValue))
	assert.False(t, IsTruthy(False))
	assert.True(t, IsTruthy(True))
	assert.True(t, IsTruthy(NewInt(0)))
	assert.True(t, IsTruthy(NewString("")))
	assert.True(t, IsTruthy(NewList(nil)))
	assert.True(t, IsTruthy(NewMap()))
}

func TestFloatDisplay_AlwaysShowsDecimalPoint(t *testing.T) {
	assert.Equal(t, "3.5", NewFloat(3.5).Display())
	assert.Equal(t, "12.0", NewFloat(12.0).Display())
}

func TestListDisplay(t *testing.T) {
	l := NewList([]Value{NewInt(10), NewInt(20)})
	assert.Equal(t, "[10, 20]", l.Display())
}

func TestStringDisplay_Escapes(t *testing.T) {
	s := NewString("a\nb\"c")
	assert.Equal(t, `"a\nb\"c"`, s.Display())
}
