package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"
)

// Calculator computes script checksums.
type Calculator interface {
	// CalculateRaw computes a checksum of the raw, unmodified content.
	CalculateRaw(content []byte) string

	// CalculateStatements computes a checksum of extracted statements.
	// Whitespace runs inside each statement are collapsed first, so
	// re-indenting a script does not change it.
	CalculateStatements(statements []string) string
}

// SHA256 implements Calculator using SHA-256.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateStatements computes SHA-256 over the normalized statements,
// each terminated by a newline.
func (c SHA256) CalculateStatements(statements []string) string {
	h := sha256.New()
	for _, stmt := range statements {
		h.Write([]byte(c.normalize(stmt)))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// normalize collapses whitespace outside quoted literals to single spaces.
// Case is kept because Hive paths and values are case-sensitive.
func (c SHA256) normalize(stmt string) string {
	var b strings.Builder
	b.Grow(len(stmt))

	var quote rune
	lastWasSpace := false
	for _, r := range strings.TrimSpace(stmt) {
		if quote == 0 && unicode.IsSpace(r) {
			if !lastWasSpace {
				b.WriteRune(' ')
				lastWasSpace = true
			}
			continue
		}
		lastWasSpace = false

		switch {
		case quote == 0 && (r == '\'' || r == '"'):
			quote = r
		case r == quote:
			quote = 0
		}
		b.WriteRune(r)
	}

	return b.String()
}
