package oracle

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenIDStandardOdds(t *testing.T) {
	tests := []struct {
		roll uint32
		want int64
	}{
		{0, 1},
		{2299, 1},
		{2300, 2},
		{4599, 2},
		{4600, 3},
		{6900, 4},
		{9899, 9},
		{9948, 10},
		{9949, 11},
		{9997, 11},
		{9998, 12},
		{9999, 12},
		{RollRange, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TokenID(StandardOdds, tt.roll), "roll %d", tt.roll)
	}
}

func TestTokenIDCrystalOdds(t *testing.T) {
	tests := []struct {
		roll uint32
		want int64
	}{
		{0, 4},
		{2299, 4},
		{2332, 4},
		{2333, 5},
		{2300, 4},
		{9995, 11},
		{9996, 12},
		{9999, 12},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TokenID(CrystalOdds, tt.roll), "roll %d", tt.roll)
	}

	for roll := uint32(0); roll < RollRange; roll++ {
		if id := TokenID(CrystalOdds, roll); id < 4 {
			t.Fatalf("roll %d drew id %d from the crystal table", roll, id)
		}
	}
}

func TestOddsSumToRange(t *testing.T) {
	for _, odds := range []Odds{StandardOdds, CrystalOdds} {
		var sum uint32
		for _, w := range odds {
			sum += w
		}
		assert.Equal(t, uint32(RollRange), sum)
	}
}

func TestOddsFor(t *testing.T) {
	assert.Equal(t, StandardOdds, OddsFor(nil))
	assert.Equal(t, StandardOdds, OddsFor(big.NewInt(0)))
	assert.Equal(t, CrystalOdds, OddsFor(big.NewInt(1)))
	assert.Equal(t, StandardOdds, OddsFor(big.NewInt(100)))
}

func TestDraw(t *testing.T) {
	rolls := []uint32{0, 2300, 9999}
	i := 0
	ids := Draw(StandardOdds, 3, func() uint32 {
		r := rolls[i]
		i++
		return r
	})
	assert.Equal(t, []string{"1", "2", "12"}, idStrings(ids))
	assert.Empty(t, Draw(CrystalOdds, 0, defaultRoll))
}

func TestDefaultRollInRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		assert.Less(t, defaultRoll(), uint32(RollRange))
	}
}
