package rlnc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSourceGenerateFalseWhenEmpty(t *testing.T) {
	s := NewSource(42)
	out := NewCombination()
	require.False(t, s.Generate(out))
	require.True(t, out.IsNull())
}

func TestSourceGenerateCoversEveryOriginal(t *testing.T) {
	s := NewSource(1)
	s.Add([]byte("aaa"))
	s.Add([]byte("bbb"))
	s.Add([]byte("ccc"))

	out := NewCombination()
	require.True(t, s.Generate(out))
	require.Equal(t, 0, out.FirstComponent())
	require.Equal(t, 2, out.LastComponent())
	for i := 0; i < 3; i++ {
		require.NotEqual(t, byte(0), out.Coeff(i))
	}
}

func TestSourceGenerateIsDeterministicGivenSameSeedAndHistory(t *testing.T) {
	build := func(seed uint64) *Combination {
		s := NewSource(seed)
		s.Add([]byte("one"))
		s.Add([]byte("two"))
		s.Add([]byte("three"))
		out := NewCombination()
		s.Generate(out)
		return out
	}

	a := build(99)
	b := build(99)

	require.Equal(t, a.Data(), b.Data())
	require.Equal(t, a.Coeff(0), b.Coeff(0))
	require.Equal(t, a.Coeff(1), b.Coeff(1))
	require.Equal(t, a.Coeff(2), b.Coeff(2))
}

func TestSourceGenerateSuccessiveCallsDiffer(t *testing.T) {
	s := NewSource(7)
	s.Add([]byte("payload-one"))
	s.Add([]byte("payload-two"))

	first := NewCombination()
	second := NewCombination()
	s.Generate(first)
	s.Generate(second)

	require.NotEqual(t, first.Data(), second.Data(), "successive Generate calls should draw fresh coefficients")
}

func TestSourceClearResetsIndexAndOriginals(t *testing.T) {
	s := NewSource(3)
	s.Add([]byte("x"))
	s.Clear()

	out := NewCombination()
	require.False(t, s.Generate(out))

	i := s.Add([]byte("y"))
	require.Equal(t, 0, i, "Clear resets the next assigned index back to 0")
}

func TestSourceAddReturnsSequentialIndices(t *testing.T) {
	s := NewSource(0)
	require.Equal(t, 0, s.Add([]byte("a")))
	require.Equal(t, 1, s.Add([]byte("b")))
	require.Equal(t, 2, s.Add([]byte("c")))
}
