package services

import (
	"math/rand"
	"strings"
)

// refAlphabet drops visually confusable characters (no I, O, 0, 1).
const refAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	refPrefix = "ORD-"
	refLength = 5
)

// GenerateOrderRef produces a short human-typable order code, e.g.
// "ORD-82FK3". Not unique by construction; the orders.ref unique index is
// the arbiter and callers retry on collision.
func GenerateOrderRef() string {
	var b strings.Builder
	b.WriteString(refPrefix)
	for i := 0; i < refLength; i++ {
		b.WriteByte(refAlphabet[rand.Intn(len(refAlphabet))])
	}
	return b.String()
}
