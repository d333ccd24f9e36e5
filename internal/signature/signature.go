// Package signature implements the regex-over-tokens matcher the parser
// uses for recognition, extraction and balanced-delimiter bracket matching
// (spec.md §4.2). A signature is a sequence whose elements are either a
// token Kind (matches exactly one token of that kind) or a raw regex
// fragment, concatenated into one compiled pattern over the token list's
// serialized form.
package signature

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/standardbeagle/flintc/internal/token"
)

// Element is one piece of a Signature.
type Element struct {
	isToken bool
	kind    token.Kind
	regex   string // raw regex fragment, used when isToken is false
}

// T builds a signature element matching exactly one token of kind k.
func T(k token.Kind) Element { return Element{isToken: true, kind: k} }

// R builds a signature element inserting a raw regex fragment verbatim.
// Used for quantifiers (`.*?`, `+`, `?`) around token elements.
func R(fragment string) Element { return Element{regex: fragment} }

// Signature is an ordered sequence of Elements.
type Signature []Element

// Combine concatenates signatures (spec.md §8: "signature.combine([a, b])
// == a ++ b").
func Combine(sigs ...Signature) Signature {
	var out Signature
	for _, s := range sigs {
		out = append(out, s...)
	}
	return out
}

// serializeToken renders a token as "#<kind>#". Every pair of '#' characters
// marks exactly one token in the serialized form — the only reserved
// delimiter, and one that cannot appear in any token's kind-integer
// serialization (spec.md §9).
func serializeToken(k token.Kind) string {
	return "#" + strconv.Itoa(int(k)) + "#"
}

// tokenSpans serializes a token list and records each token's
// [start,end) character span in the resulting string, so a regex match's
// character offsets can be mapped back to token indices by locating which
// spans they fall within.
func tokenSpans(list token.List) (string, []span) {
	var b strings.Builder
	spans := make([]span, len(list))
	for i, tok := range list {
		start := b.Len()
		b.WriteString(serializeToken(tok.Kind))
		spans[i] = span{start: start, end: b.Len()}
	}
	return b.String(), spans
}

type span struct{ start, end int }

// charToTokenIndex maps a character offset in the serialized string to the
// index of the token whose span contains it, or len(spans) if off is at
// or past the end.
func charToTokenIndex(spans []span, off int) int {
	lo, hi := 0, len(spans)
	for lo < hi {
		mid := (lo + hi) / 2
		if spans[mid].end <= off {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

var compileCache sync.Map // map[string]*regexp.Regexp, keyed by the signature's pattern string

// pattern renders sig into a regex pattern string.
func (sig Signature) pattern() string {
	var b strings.Builder
	for _, el := range sig {
		if el.isToken {
			b.WriteString(regexp.QuoteMeta(serializeToken(el.kind)))
		} else {
			b.WriteString(el.regex)
		}
	}
	return b.String()
}

// Compile builds (or fetches from cache) the regexp for sig. Prebuilt
// signatures (spec.md §4.2) are matched repeatedly across a file's token
// stream, so compilation is memoized per distinct pattern string.
func (sig Signature) Compile() (*regexp.Regexp, error) {
	pat := sig.pattern()
	if cached, ok := compileCache.Load(pat); ok {
		return cached.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(pat)
	if err != nil {
		return nil, fmt.Errorf("signature: invalid pattern %q: %w", pat, err)
	}
	compileCache.Store(pat, re)
	return re, nil
}

// MustCompile is Compile, panicking on error. Used for the prebuilt
// signature table, which is constructed once from constant patterns that
// are known-valid at compile time of this package.
func (sig Signature) MustCompile() *regexp.Regexp {
	re, err := sig.Compile()
	if err != nil {
		panic(err)
	}
	return re
}

// Range is a half-open token-index range [Start, End).
type Range struct{ Start, End int }
