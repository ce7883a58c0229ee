package main

import (
	"math/big"
	"strings"
)

func formatGwei(v *big.Int) string {
	if v == nil {
		return "0"
	}
	r := new(big.Rat).SetFrac(v, big.NewInt(1_000_000_000))
	return r.FloatString(2)
}

// formatEther renders wei with 6 decimals (POL and ETH share 18 decimals).
func formatEther(v *big.Int) string {
	if v == nil {
		return "0"
	}
	s := new(big.Rat).SetFrac(v, big.NewInt(1_000_000_000_000_000_000))
	return s.FloatString(6)
}

func formatIDs(ids []string) string {
	if len(ids) == 0 {
		return "[]"
	}
	return "[" + strings.Join(ids, ", ") + "]"
}
