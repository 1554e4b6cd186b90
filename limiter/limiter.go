package limiter

import (
	"encoding/json"
	"math"

	"github.com/clipfit/clipfit/richtext"
)

// Config configures a Limiter.
type Config struct {
	// MaxLength is the maximum total document length in characters
	// (grapheme clusters). Zero or negative means unlimited.
	MaxLength int
}

// Limiter decides how much of a paste payload fits into the document. It is a
// pure value: safe to share and to use concurrently across independent paste
// events.
type Limiter struct {
	cfg Config
}

func New(cfg Config) Limiter { return Limiter{cfg: cfg} }

// Unlimited reports whether no limit is configured.
func (l Limiter) Unlimited() bool { return l.cfg.MaxLength <= 0 }

// MaxLength returns the configured maximum document length (<= 0 when
// unlimited).
func (l Limiter) MaxLength() int { return l.cfg.MaxLength }

// Remaining returns the character budget left for a document currently
// docLength characters long. Never negative.
func (l Limiter) Remaining(docLength int) int {
	if l.Unlimited() {
		return math.MaxInt
	}
	left := l.cfg.MaxLength - docLength
	if left < 0 {
		return 0
	}
	return left
}

// FitText returns the part of text that may be inserted into a document of
// docLength characters, and whether anything was cut.
func (l Limiter) FitText(docLength int, text string) (string, bool) {
	if l.Unlimited() {
		return text, false
	}
	fitted := richtext.TruncateText(text, l.Remaining(docLength))
	return fitted, fitted != text
}

// FitFragment is FitText for formatted content. The bool reports whether any
// text was dropped to fit; trimming leading break nodes that carry no text
// does not count as a cut.
func (l Limiter) FitFragment(docLength int, f richtext.Fragment) (richtext.Fragment, bool) {
	if l.Unlimited() {
		return f, false
	}
	fitted := richtext.Truncate(f, l.Remaining(docLength))
	return fitted, richtext.TextLen(fitted) < richtext.TextLen(f)
}

// FitFragmentJSON decodes a serialized clipboard/drag payload and fits it.
// Decode errors are returned to the host; fitting itself never fails.
func (l Limiter) FitFragmentJSON(docLength int, payload []byte) (richtext.Fragment, bool, error) {
	var f richtext.Fragment
	if err := json.Unmarshal(payload, &f); err != nil {
		return nil, false, err
	}
	fitted, cut := l.FitFragment(docLength, f)
	return fitted, cut, nil
}
