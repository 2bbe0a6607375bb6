package game

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/recuerdo-labs/escape_api/shared"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// CanonicalText normalizes free-text and place answers: lowercase, trimmed,
// inner whitespace collapsed, diacritics stripped. "  Café  " and "cafe"
// canonicalize to the same string.
func CanonicalText(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Join(strings.Fields(s), " ")
	if out, _, err := transform.String(stripMarks, s); err == nil {
		return out
	}
	return s
}

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"2 January 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2006.01.02",
}

// NormalizeDate reduces any accepted date form to YYYY-MM-DD. ISO
// timestamps are truncated at the "T"; anything else goes through a list
// of common layouts.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, 'T'); i > 0 {
		s = s[:i]
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format("2006-01-02"), nil
	}
	for _, layout := range dateLayouts[1:] {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("unrecognized date format: %q", s)
}

// PuzzleSolution is the canonical solved permutation for a photo puzzle of
// the given grid size: "1,2,...,N²". It intentionally does not depend on
// the image content; every puzzle of one size shares this answer string.
func PuzzleSolution(gridSize int) string {
	cells := gridSize * gridSize
	parts := make([]string, cells)
	for i := 0; i < cells; i++ {
		parts[i] = strconv.Itoa(i + 1)
	}
	return strings.Join(parts, ",")
}

// CanonicalPermutation renders a submitted tile ordering the same way
// PuzzleSolution does.
func CanonicalPermutation(order []int) string {
	parts := make([]string, len(order))
	for i, v := range order {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// CanonicalAnswer dispatches canonicalization by fact type. For photo facts
// the answer is expected to be a comma-separated permutation already.
func CanonicalAnswer(factType, answer string) (string, error) {
	switch factType {
	case shared.FactTypeText, shared.FactTypePlace:
		return CanonicalText(answer), nil
	case shared.FactTypeDate:
		return NormalizeDate(answer)
	case shared.FactTypePhoto:
		parts := strings.Split(answer, ",")
		order := make([]int, 0, len(parts))
		for _, p := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return "", fmt.Errorf("invalid permutation entry %q", p)
			}
			order = append(order, v)
		}
		return CanonicalPermutation(order), nil
	default:
		return "", fmt.Errorf("unknown fact type: %q", factType)
	}
}

// NewSalt returns 16 random bytes hex-encoded. One salt per level.
func NewSalt() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Commit binds a canonical answer to a salt: hex(SHA-256(salt || canonical)).
// The plaintext answer is never stored next to the level.
func Commit(salt, canonical string) string {
	digest := sha256.Sum256([]byte(salt + canonical))
	return hex.EncodeToString(digest[:])
}

// Verify canonicalizes a submitted answer for the fact type and compares
// its commitment against the stored one. Exact equality only.
func Verify(salt, commitment, factType, answer string) bool {
	canonical, err := CanonicalAnswer(factType, answer)
	if err != nil {
		return false
	}
	computed := Commit(salt, canonical)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(commitment)) == 1
}
