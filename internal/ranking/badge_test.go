package ranking

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRank_Neutral(t *testing.T) {
	t.Run("empty population", func(t *testing.T) {
		require.Equal(t, Badge{}, Rank(5, nil, false, KindCost))
	})

	t.Run("all values equal", func(t *testing.T) {
		require.Equal(t, Badge{}, Rank(5, []float64{5, 5, 5}, false, KindCost))
	})
}

func TestRank_Cost(t *testing.T) {
	pop := []float64{10, 20, 30}

	t.Run("cheapest is best", func(t *testing.T) {
		b := Rank(10, pop, false, KindCost)
		require.True(t, b.IsBest)
		require.False(t, b.IsWorst)
		require.Equal(t, "3.0x cheaper", b.RelativeText)
		require.Equal(t, ColorBest, b.ColorClass)
	})

	t.Run("most expensive is worst", func(t *testing.T) {
		b := Rank(30, pop, false, KindCost)
		require.False(t, b.IsBest)
		require.True(t, b.IsWorst)
		require.Equal(t, "3.0x more expensive", b.RelativeText)
		require.Equal(t, ColorWorst, b.ColorClass)
	})

	t.Run("middle value compares against best", func(t *testing.T) {
		b := Rank(20, pop, false, KindCost)
		require.False(t, b.IsBest)
		require.False(t, b.IsWorst)
		require.Equal(t, "2.0x more expensive", b.RelativeText)
		require.Empty(t, b.ColorClass)
	})
}

func TestRank_Duration(t *testing.T) {
	pop := []float64{1.5, 3.0}

	b := Rank(1.5, pop, false, KindDuration)
	require.True(t, b.IsBest)
	require.Equal(t, "2.0x faster", b.RelativeText)

	b = Rank(3.0, pop, false, KindDuration)
	require.True(t, b.IsWorst)
	require.Equal(t, "2.0x slower", b.RelativeText)
}

func TestRank_HigherIsBetter(t *testing.T) {
	pop := []float64{0.5, 0.8, 1.0}

	t.Run("max is best with margin over worst", func(t *testing.T) {
		b := Rank(1.0, pop, true, KindGeneric)
		require.True(t, b.IsBest)
		require.Equal(t, "2.0x", b.RelativeText)
	})

	t.Run("non-best measures distance from best", func(t *testing.T) {
		b := Rank(0.5, pop, true, KindGeneric)
		require.True(t, b.IsWorst)
		require.Equal(t, "2.0x", b.RelativeText)
	})

	t.Run("untagged metrics carry no directional word", func(t *testing.T) {
		b := Rank(0.8, pop, true, KindGeneric)
		require.Equal(t, "1.2x", b.RelativeText)
	})
}

func TestRank_ZeroDivisorOmitsText(t *testing.T) {
	t.Run("zero min lower-is-better", func(t *testing.T) {
		b := Rank(10, []float64{0, 10}, false, KindCost)
		require.True(t, b.IsWorst)
		require.Empty(t, b.RelativeText)
	})

	t.Run("zero value higher-is-better", func(t *testing.T) {
		b := Rank(0, []float64{0, 10}, true, KindGeneric)
		require.True(t, b.IsWorst)
		require.Empty(t, b.RelativeText)
	})

	t.Run("zero min best higher-is-better", func(t *testing.T) {
		b := Rank(10, []float64{0, 10}, true, KindGeneric)
		require.True(t, b.IsBest)
		require.Empty(t, b.RelativeText)
	})
}
