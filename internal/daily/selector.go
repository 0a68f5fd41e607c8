// Package daily derives deterministic pseudo-random selections from the
// calendar date, so every visitor sees the same "today" content.
package daily

import (
	"crypto/sha256"
	"math/big"
	"math/rand"
	"time"
)

// KST is the timezone the original apps were written for; "today" is
// always the Korean calendar date regardless of server locale.
var KST = time.FixedZone("KST", 9*60*60)

var seedMod = big.NewInt(100_000_000)

// Today returns the current instant in KST.
func Today() time.Time {
	return time.Now().In(KST)
}

// DateString formats t as the canonical YYYY-MM-DD key in KST.
func DateString(t time.Time) string {
	return t.In(KST).Format("2006-01-02")
}

// IsMorning reports whether t falls between 05:00 and 11:59 KST.
func IsMorning(t time.Time) bool {
	hour := t.In(KST).Hour()
	return hour >= 5 && hour <= 11
}

// Seed derives an integer seed from the calendar date alone: the date is
// formatted as a dense numeric string (20250101), hashed with SHA-256 and
// the digest reduced mod 10^8. Identical dates always yield identical
// seeds; clock time and machine entropy never enter the derivation.
func Seed(t time.Time) int64 {
	dense := t.In(KST).Format("20060102")
	sum := sha256.Sum256([]byte(dense))

	n := new(big.Int).SetBytes(sum[:])
	return n.Mod(n, seedMod).Int64()
}

// New returns a generator seeded for the given date. The offset lets
// independent daily features (quiz shuffling, affirmation count) draw
// from distinct but equally deterministic sequences.
func New(t time.Time, offset int64) *rand.Rand {
	return rand.New(rand.NewSource(Seed(t) + offset))
}

// Pick selects k distinct items from catalog for the given date.
// k >= len(catalog) returns a full copy in catalog order; k <= 0 returns
// an empty slice. Repeated calls on the same date return identical
// results.
func Pick[T any](catalog []T, t time.Time, k int) []T {
	return Sample(New(t, 0), catalog, k)
}

// Sample draws k distinct items from catalog using the supplied
// generator. The selection order depends only on the generator's state.
func Sample[T any](rng *rand.Rand, catalog []T, k int) []T {
	if k <= 0 {
		return []T{}
	}
	if k >= len(catalog) {
		return append([]T(nil), catalog...)
	}

	picked := make([]T, 0, k)
	for _, idx := range rng.Perm(len(catalog))[:k] {
		picked = append(picked, catalog[idx])
	}
	return picked
}
