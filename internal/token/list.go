package token

// List is an ordered, finite sequence of PositionedTokens, always
// EOF-terminated after lexing completes.
type List []PositionedToken

// Slice is a half-open (Begin, End) pair of indices into a List, used
// ubiquitously instead of copying token runs (spec.md §3: TokenSlice).
type Slice struct {
	Begin int
	End   int
}

func NewSlice(begin, end int) Slice { return Slice{Begin: begin, End: end} }

func (s Slice) Len() int { return s.End - s.Begin }

func (s Slice) IsEmpty() bool { return s.End <= s.Begin }

// View returns the tokens s addresses within list. Panics if out of
// range — callers are expected to only construct slices within list
// bounds (an internal invariant, not a user-facing failure mode).
func (s Slice) View(list List) List {
	return list[s.Begin:s.End]
}

// Sub returns a Slice relative to the same underlying list, offset by an
// index local to s (0 <= lo <= hi <= s.Len()).
func (s Slice) Sub(lo, hi int) Slice {
	return Slice{Begin: s.Begin + lo, End: s.Begin + hi}
}

// Whole returns a Slice spanning all of list.
func Whole(list List) Slice {
	return Slice{Begin: 0, End: len(list)}
}

// LineRange returns the index range [start, end) of all tokens on the
// given 1-based source line, or ok=false if the line has no tokens.
func (l List) LineRange(line int) (Slice, bool) {
	start := -1
	for i, t := range l {
		if t.Pos.Line == line {
			if start == -1 {
				start = i
			}
		} else if start != -1 {
			return Slice{Begin: start, End: i}, true
		}
	}
	if start == -1 {
		return Slice{}, false
	}
	return Slice{Begin: start, End: len(l)}, true
}

// LeadingIndents returns the indent depth of the given line, or
// ok=false if the line is absent from the list. The lexer emits exactly
// one INDENT token per line with its depth stashed in Position.Column
// (see internal/lexer.emitIndent/IndentLevel), so this reads that column
// rather than counting INDENT-kind tokens — a line nested 20 levels deep
// still has a single INDENT token, and must report 20 (spec.md §8).
func (l List) LeadingIndents(line int) (int, bool) {
	rng, ok := l.LineRange(line)
	if !ok {
		return 0, false
	}
	for _, t := range l[rng.Begin:rng.End] {
		if t.Kind == INDENT {
			return t.Pos.Column, true
		}
	}
	return 0, true
}
