package signature

import (
	"sort"

	"github.com/standardbeagle/flintc/internal/token"
)

// Contains reports whether sig matches anywhere within list
// (tokens_contain, spec.md §4.2).
func Contains(list token.List, sig Signature) bool {
	re := sig.MustCompile()
	serialized, _ := tokenSpans(list)
	return re.MatchString(serialized)
}

// Matches reports whether sig matches the whole of list (tokens_match).
// Invariant checked by spec.md §8 property 3: Matches(L, S) ==
// regex_match(serialize(L), compile(S)).
func Matches(list token.List, sig Signature) bool {
	re := Combine(Signature{R("^(?:")}, sig, Signature{R(")$")}).MustCompile()
	serialized, _ := tokenSpans(list)
	return re.MatchString(serialized)
}

// MatchRanges returns every non-overlapping match of sig in list, as
// half-open token ranges (get_match_ranges).
func MatchRanges(list token.List, sig Signature) []Range {
	re := sig.MustCompile()
	serialized, spans := tokenSpans(list)
	locs := re.FindAllStringIndex(serialized, -1)
	if locs == nil {
		return nil
	}
	out := make([]Range, 0, len(locs))
	for _, loc := range locs {
		out = append(out, Range{
			Start: charToTokenIndex(spans, loc[0]),
			End:   charToTokenIndex(spans, loc[1]),
		})
	}
	return out
}

// MatchRangesInRange filters MatchRanges to those fully contained within
// [lo, hi) (get_match_ranges_in_range).
func MatchRangesInRange(list token.List, sig Signature, lo, hi int) []Range {
	var out []Range
	for _, r := range MatchRanges(list, sig) {
		if r.Start >= lo && r.End <= hi {
			out = append(out, r)
		}
	}
	return out
}

// ContainsInRange reports whether sig matches anywhere within the token
// sub-range [lo, hi) (tokens_contain_in_range).
func ContainsInRange(list token.List, sig Signature, lo, hi int) bool {
	if lo < 0 || hi > len(list) || lo > hi {
		return false
	}
	return Contains(list[lo:hi], sig)
}

// BalancedRangeExtraction returns the first balanced bracket region
// delimited by inc/dec signatures: every inc/dec match start is walked in
// sorted order, incrementing/decrementing a depth counter; the result
// spans the first inc through the dec that drives depth back to zero
// (spec.md §4.2).
func BalancedRangeExtraction(list token.List, inc, dec Signature) (Range, bool) {
	type mark struct {
		pos   int
		open  bool
		endAt int // token index this mark's match ends at (for dec, exclusive end of result)
	}
	var marks []mark
	for _, r := range MatchRanges(list, inc) {
		marks = append(marks, mark{pos: r.Start, open: true})
	}
	for _, r := range MatchRanges(list, dec) {
		marks = append(marks, mark{pos: r.Start, open: false, endAt: r.End})
	}
	sort.SliceStable(marks, func(i, j int) bool { return marks[i].pos < marks[j].pos })

	depth := 0
	start := -1
	for _, m := range marks {
		if m.open {
			if depth == 0 {
				start = m.pos
			}
			depth++
		} else {
			if depth == 0 {
				continue // unmatched closer before any opener; ignore
			}
			depth--
			if depth == 0 {
				return Range{Start: start, End: m.endAt}, true
			}
		}
	}
	return Range{}, false
}

// BalancedRangeExtractionVec repeatedly extracts balanced regions from
// list, deleting each extracted region before searching for the next
// (spec.md §4.2, §8 property 4: idempotent-with-deletion — each
// successive call on the remainder returns either a strictly later range
// or none). Returned ranges are expressed in the ORIGINAL list's
// indices.
func BalancedRangeExtractionVec(list token.List, inc, dec Signature) []Range {
	var out []Range
	remaining := make(token.List, len(list))
	copy(remaining, list)
	// offset[i] maps an index in `remaining` back to the original list.
	offset := make([]int, len(list))
	for i := range offset {
		offset[i] = i
	}

	for {
		r, ok := BalancedRangeExtraction(remaining, inc, dec)
		if !ok {
			break
		}
		out = append(out, Range{Start: offset[r.Start], End: offset[r.End-1] + 1})
		remaining = append(remaining[:r.Start], remaining[r.End:]...)
		offset = append(offset[:r.Start], offset[r.End:]...)
	}
	return out
}

// MatchUntilSignature builds a signature matching lazy content up to
// and including the first occurrence of sig — used for statement
// extraction ("... ;" or "... :"), spec.md §4.2.
func MatchUntilSignature(sig Signature) Signature {
	return Combine(Signature{R(".*?")}, sig)
}
