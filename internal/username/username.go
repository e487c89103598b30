// Package username derives a default username from an email address.
//
// The result is "<local-part>_<8 digits>". Suffixes come from a
// non-cryptographic random source and are not checked for uniqueness;
// callers that need unique usernames must check against storage and retry.
package username

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// SuffixDigits is the width of the numeric suffix.
const SuffixDigits = 8

const suffixSpace = 100_000_000 // 10^SuffixDigits

// Generator produces usernames from a dedicated random source.
// It is not safe for concurrent use; use the package-level Generate for that.
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator returns a Generator drawing from src.
func NewGenerator(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

// Generate returns "<local-part>_<suffix>" for email.
func (g *Generator) Generate(email string) string {
	return compose(email, g.rnd.IntN(suffixSpace))
}

// Generate is like Generator.Generate but uses the shared global source.
func Generate(email string) string {
	return compose(email, rand.IntN(suffixSpace))
}

// LocalPart returns the text before the first "@", or the whole input when
// there is none.
func LocalPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

func compose(email string, n int) string {
	return fmt.Sprintf("%s_%0*d", LocalPart(email), SuffixDigits, n)
}
