package parser

import (
	"github.com/standardbeagle/flintc/internal/token"
	"github.com/standardbeagle/flintc/internal/typesys"
)

// parseTypeRef consumes a type reference starting at toks[i]: a
// primitive keyword, a data/variant name, a parenthesized tuple, or a
// `func(T, ...) -> T` function-pointer type —
// each optionally followed by any number of `[]` (array) suffixes and
// at most one trailing `?` (optional). Returns the interned type and
// the index just past what was consumed, or ok=false if toks[i] does
// not start a type.
func (p *Parser) parseTypeRef(toks token.List, i int) (t *typesys.Type, next int, ok bool) {
	if i >= len(toks) {
		return nil, i, false
	}

	switch {
	case toks[i].Kind == token.TYPE:
		t, ok = toks[i].TypeValue.(*typesys.Type)
		if !ok {
			return nil, i, false
		}
		i++
	case toks[i].Kind == token.IDENTIFIER:
		t = p.types.Data(toks[i].Text())
		i++
	case toks[i].Kind == token.LPAREN:
		i++
		var members []*typesys.Type
		for i < len(toks) && toks[i].Kind != token.RPAREN {
			m, ni, mok := p.parseTypeRef(toks, i)
			if !mok {
				return nil, i, false
			}
			members = append(members, m)
			i = ni
			if i < len(toks) && toks[i].Kind == token.COMMA {
				i++
			}
		}
		if i >= len(toks) || toks[i].Kind != token.RPAREN {
			return nil, i, false
		}
		i++
		t = p.types.Tuple(members)
	case toks[i].Kind == token.KW_FUNC:
		// Function-pointer type reference: `func(T, T) -> T`. This is the
		// sole pointer-like member of the closed Type taxonomy (spec.md
		// §3); extern signatures are the only place it is accepted
		// (enforced by analyzePointerUsage, not by this parse step).
		i++
		if i >= len(toks) || toks[i].Kind != token.LPAREN {
			return nil, i, false
		}
		i++
		var params []*typesys.Type
		for i < len(toks) && toks[i].Kind != token.RPAREN {
			m, ni, mok := p.parseTypeRef(toks, i)
			if !mok {
				return nil, i, false
			}
			params = append(params, m)
			i = ni
			if i < len(toks) && toks[i].Kind == token.COMMA {
				i++
			}
		}
		if i >= len(toks) || toks[i].Kind != token.RPAREN {
			return nil, i, false
		}
		i++
		ret := p.types.Primitive(typesys.Void)
		if i < len(toks) && toks[i].Kind == token.ARROW {
			i++
			r, rni, rok := p.parseTypeRef(toks, i)
			if !rok {
				return nil, i, false
			}
			ret = r
			i = rni
		}
		t = p.types.FuncPointer(params, ret)
	default:
		return nil, i, false
	}

	for i < len(toks) && toks[i].Kind == token.LBRACKET && i+1 < len(toks) && toks[i+1].Kind == token.RBRACKET {
		t = p.types.Array(t)
		i += 2
	}
	if i < len(toks) && toks[i].Kind == token.QUESTION {
		t = p.types.Optional(t)
		i++
	}
	return t, i, true
}
