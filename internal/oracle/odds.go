package oracle

import (
	"math/big"
	"math/rand/v2"
)

// RollRange bounds a roll: rolls are drawn from [0, RollRange).
const RollRange = 10000

// Odds weighs token ids 1 to 12; each table sums to RollRange.
type Odds [12]uint32

var (
	// StandardOdds applies to plain mint requests.
	StandardOdds = Odds{2300, 2300, 2300, 700, 700, 700, 300, 300, 300, 49, 49, 2}
	// CrystalOdds applies to crystal requests and never yields ids 1 to 3.
	CrystalOdds = Odds{0, 0, 0, 2333, 2333, 2333, 833, 833, 833, 249, 249, 4}
)

// OddsFor picks the table for a request's crystals flag.
func OddsFor(crystals *big.Int) Odds {
	if crystals != nil && crystals.IsInt64() && crystals.Int64() == 1 {
		return CrystalOdds
	}
	return StandardOdds
}

// TokenID maps roll to the first id whose cumulative weight exceeds it.
// Rolls past the table fall back to id 1.
func TokenID(odds Odds, roll uint32) int64 {
	var sum uint32
	for i, w := range odds {
		sum += w
		if roll < sum {
			return int64(i + 1)
		}
	}
	return 1
}

// Draw rolls amount token ids from odds.
func Draw(odds Odds, amount int, roll func() uint32) []*big.Int {
	ids := make([]*big.Int, 0, amount)
	for i := 0; i < amount; i++ {
		ids = append(ids, big.NewInt(TokenID(odds, roll())))
	}
	return ids
}

func defaultRoll() uint32 { return rand.Uint32N(RollRange) }
