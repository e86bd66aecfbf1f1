// Package sampledata generates plausible placeholder datasets for
// associations that have no recorded financial history yet, so dashboards
// never render empty. Every function is pure and total: outputs depend
// only on the association id, and malformed ids degrade instead of failing.
package sampledata

import (
	"hash/fnv"
	"math/rand"
	"strconv"

	associationdomain "github.com/covenantworks/covenant/internal/association/domain"
)

// ScaleFor derives the multiplier applied to every generated monetary and
// count value. The portfolio sentinel maps to exactly 1.0; real ids map to
// (last digit / 5) + 0.8 so different associations show visibly different
// but reproducible numbers. A non-numeric trailing character counts as 0.
func ScaleFor(associationID string) float64 {
	if associationID == associationdomain.AllAssociations {
		return 1.0
	}
	return float64(lastDigit(associationID))/5 + 0.8
}

func lastDigit(associationID string) int {
	if associationID == "" {
		return 0
	}
	digit, err := strconv.Atoi(associationID[len(associationID)-1:])
	if err != nil {
		return 0
	}
	return digit
}

func lastTwo(associationID string) string {
	if len(associationID) < 2 {
		return associationID
	}
	return associationID[len(associationID)-2:]
}

// seededRand returns a deterministic source per association so repeated
// generation for the same id yields the same dataset.
func seededRand(associationID string) *rand.Rand {
	h := fnv.New64a()
	_, _ = h.Write([]byte(associationID))
	return rand.New(rand.NewSource(int64(h.Sum64())))
}
