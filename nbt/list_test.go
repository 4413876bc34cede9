package nbt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/minetools/nbtkit/nbt"
)

func TestListFirstAppendEstablishesType(t *testing.T) {
	l := nbt.NewList()
	require.Equal(t, nbt.TypeEnd, l.ElemType())

	require.NoError(t, l.Append(&nbt.Int{Value: 1}))
	require.Equal(t, nbt.TypeInt, l.ElemType())
	require.Equal(t, 1, l.Len())
}

func TestListRejectsMixedTypes(t *testing.T) {
	l := nbt.NewList()
	require.NoError(t, l.Append(&nbt.Int{Value: 1}))

	err := l.Append(&nbt.Short{Value: 2})
	require.ErrorIs(t, err, nbt.ErrTypeMismatch)

	// Failed append leaves the list unmodified.
	require.Equal(t, 1, l.Len())
	require.Equal(t, nbt.TypeInt, l.ElemType())
}

func TestListGetSetDelete(t *testing.T) {
	l := nbt.NewList()
	require.NoError(t, l.Append(&nbt.String{Value: "a"}))
	require.NoError(t, l.Append(&nbt.String{Value: "b"}))
	require.NoError(t, l.Append(&nbt.String{Value: "c"}))

	got, err := l.Get(1)
	require.NoError(t, err)
	require.Equal(t, "b", got.(*nbt.String).Value)

	_, err = l.Get(3)
	require.ErrorIs(t, err, nbt.ErrIndexOutOfRange)

	require.NoError(t, l.Set(1, &nbt.String{Value: "B"}))
	require.ErrorIs(t, l.Set(1, &nbt.Int{Value: 1}), nbt.ErrTypeMismatch)

	require.NoError(t, l.Delete(0))
	require.Equal(t, 2, l.Len())
	got, err = l.Get(0)
	require.NoError(t, err)
	require.Equal(t, "B", got.(*nbt.String).Value)

	require.ErrorIs(t, l.Delete(5), nbt.ErrIndexOutOfRange)
}

func TestListTypeStaysFixedWhenEmptied(t *testing.T) {
	l := nbt.NewList()
	require.NoError(t, l.Append(&nbt.Float{Value: 1.5}))
	require.NoError(t, l.Delete(0))

	require.Equal(t, 0, l.Len())
	require.Equal(t, nbt.TypeFloat, l.ElemType())
	require.ErrorIs(t, l.Append(&nbt.Int{Value: 1}), nbt.ErrTypeMismatch)
}

func TestNewListOf(t *testing.T) {
	l := nbt.NewListOf(nbt.TypeDouble)
	require.ErrorIs(t, l.Append(&nbt.Int{Value: 1}), nbt.ErrTypeMismatch)
	require.NoError(t, l.Append(&nbt.Double{Value: 2.5}))
}
