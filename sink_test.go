package rlnc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSinkSolveRejectsNullCombination(t *testing.T) {
	s := NewSink()
	require.False(t, s.Solve(NewCombination()))
	require.Equal(t, 0, s.SeenCount())
}

func TestSinkSolveFirstCombinationIsAlwaysInnovative(t *testing.T) {
	s := NewSink()
	c := NewTrivialCombination(0, []byte("hello"))
	require.True(t, s.Solve(c))
	require.Equal(t, 1, s.SeenCount())
	require.Equal(t, 1, s.DecodedCount())
}

func TestSinkSolveRejectsDuplicateCombination(t *testing.T) {
	s := NewSink()
	first := NewTrivialCombination(0, []byte("hello"))
	require.True(t, s.Solve(first))

	dup := NewTrivialCombination(0, []byte("hello"))
	require.False(t, s.Solve(dup))
	require.Equal(t, 1, s.SeenCount())
}

func TestSinkReconstructsFromCodedCombinations(t *testing.T) {
	src := NewSource(123)
	src.Add([]byte("aaaa"))
	src.Add([]byte("bbbb"))
	src.Add([]byte("cccc"))

	sink := NewSink()
	for i := 0; i < 30 && sink.DecodedCount() < 3; i++ {
		c := NewCombination()
		require.True(t, src.Generate(c))
		sink.Solve(c)
	}

	require.Equal(t, 3, sink.DecodedCount())

	var buf bytes.Buffer
	n, err := sink.Dump(&buf)
	require.NoError(t, err)
	require.Equal(t, 12, n)
	require.Equal(t, "aaaabbbbcccc", buf.String())
}

func TestSinkPivotInvariant(t *testing.T) {
	src := NewSource(55)
	for i := 0; i < 5; i++ {
		src.Add([]byte{byte('A' + i), byte('A' + i)})
	}

	sink := NewSink()
	for i := 0; i < 20 && sink.DecodedCount() < 5; i++ {
		c := NewCombination()
		src.Generate(c)
		sink.Solve(c)

		for _, row := range sink.Get() {
			require.Equal(t, byte(1), row.Coeff(row.FirstComponent()), "stored row must have coefficient 1 at its pivot")
		}
	}
}

func TestSinkClearResetsState(t *testing.T) {
	sink := NewSink()
	sink.Solve(NewTrivialCombination(0, []byte("x")))
	sink.Clear()

	require.Equal(t, 0, sink.SeenCount())
	require.Equal(t, 0, sink.DecodedCount())
	require.Equal(t, 0, sink.ComponentsCount())
	require.Empty(t, sink.Get())
}

func TestSinkGetDecodedOnlyReturnsFullyDecodedRows(t *testing.T) {
	src := NewSource(9)
	src.Add([]byte("one"))
	src.Add([]byte("two"))

	sink := NewSink()
	c := NewCombination()
	src.Generate(c)
	sink.Solve(c) // coded combination mixing both originals: not yet decoded

	for _, row := range sink.GetDecoded() {
		require.False(t, row.IsCoded())
	}
}
