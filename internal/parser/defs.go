package parser

import (
	"github.com/standardbeagle/flintc/internal/ast"
	"github.com/standardbeagle/flintc/internal/diag"
	"github.com/standardbeagle/flintc/internal/token"
)

// parseDataDef parses a `data NAME:` module: an indented field list,
// each field `TYPE NAME [= DEFAULT];`.
func (p *Parser) parseDataDef(lines []line, idx int) int {
	ln := lines[idx]
	body := extractBody(lines, idx)
	consumed := 1 + len(body)

	if len(ln.tokens) < 2 || ln.tokens[1].Kind != token.IDENTIFIER {
		return consumed
	}
	name := ln.tokens[1].Text()
	if _, exists := p.node.ByName[name]; exists {
		p.report(diag.KindDataRedefinition, ln.pos, func(d *diag.Diagnostic) { d.Name = name })
	}

	def := &ast.DataDef{Pos: astPos(p.file, ln.pos, 0), Name: name}
	seen := make(map[string]bool)
	for _, fln := range body {
		toks := fln.tokens
		if len(toks) == 0 || toks[len(toks)-1].Kind != token.SEMICOLON {
			continue
		}
		t, ti, ok := p.parseTypeRef(toks, 0)
		if !ok || ti >= len(toks) || toks[ti].Kind != token.IDENTIFIER {
			continue
		}
		fname := toks[ti].Text()
		if seen[fname] {
			p.report(diag.KindDataDuplicateField, fln.pos, func(d *diag.Diagnostic) { d.Name = name; d.Name2 = fname })
		}
		seen[fname] = true
		field := ast.DataField{Name: fname, Type: t}
		if ti+1 < len(toks) && toks[ti+1].Kind == token.ASSIGN {
			arena := newArenaWithParams(nil)
			ep := p.newExprParser(toks[ti+2:len(toks)-1], arena, scopeGlobal)
			field.Default = ep.parseExpression(0)
		}
		def.Fields = append(def.Fields, field)
	}

	p.node.add(def, name)
	return consumed
}

// parseFuncModuleDef parses a `func NAME requires A, B:` module: a
// required-data-module list, followed by nested `def` functions. Each
// nested function is parsed like a top-level one: its scope holds only
// its own parameters, and the required data modules' fields are not
// declared in it.
func (p *Parser) parseFuncModuleDef(lines []line, idx int) int {
	ln := lines[idx]
	body := extractBody(lines, idx)
	consumed := 1 + len(body)

	if len(ln.tokens) < 2 || ln.tokens[1].Kind != token.IDENTIFIER {
		return consumed
	}
	name := ln.tokens[1].Text()
	if _, exists := p.node.ByName[name].(*ast.FuncDef); exists {
		p.report(diag.KindFuncRedefinition, ln.pos, func(d *diag.Diagnostic) { d.Name = name })
	}
	def := &ast.FuncDef{Pos: astPos(p.file, ln.pos, 0), Name: name}

	i := 2
	if i < len(ln.tokens) && ln.tokens[i].Kind == token.KW_REQUIRES {
		i++
		for i < len(ln.tokens) && ln.tokens[i].Kind != token.COLON {
			if ln.tokens[i].Kind == token.IDENTIFIER {
				for _, r := range def.Requires {
					if r == ln.tokens[i].Text() {
						p.report(diag.KindFuncRequiringSameDataTwice, ln.pos, func(d *diag.Diagnostic) { d.Name = name; d.Name2 = r })
					}
				}
				def.Requires = append(def.Requires, ln.tokens[i].Text())
			}
			i++
		}
	}

	j := 0
	for j < len(body) {
		if body[j].level != body[0].level {
			j++
			continue
		}
		save := p.node
		scratch := newFileNode(p.file, p.node.Lines)
		p.node = scratch
		kw := leadingKeyword(body[j].tokens)
		var n int
		if kw == token.KW_DEF || kw == token.KW_ALIGNED || kw == token.KW_CONST {
			n = p.parseFunctionDef(body, j)
		} else {
			n = 1
		}
		p.node = save
		for _, d := range scratch.Definitions {
			if fd, ok := d.(*ast.FunctionDef); ok {
				def.Functions = append(def.Functions, fd)
			}
		}
		j += n
	}

	p.node.add(def, name)
	return consumed
}

// parseEntityDef parses both entity forms (spec.md §4.3): modular
// (`entity NAME: data A, B func C, D`) and monolithic (`entity NAME:`
// with an inline `data:`/`func:` body), plus an optional `link:` section.
func (p *Parser) parseEntityDef(lines []line, idx int) int {
	ln := lines[idx]
	body := extractBody(lines, idx)
	consumed := 1 + len(body)

	if len(ln.tokens) < 2 || ln.tokens[1].Kind != token.IDENTIFIER {
		return consumed
	}
	name := ln.tokens[1].Text()
	def := &ast.EntityDef{Pos: astPos(p.file, ln.pos, 0), Name: name, ConstructorName: name}

	hasInlineBlocks := false
	for _, bln := range body {
		if bln.level != body[0].level {
			continue
		}
		kw := leadingKeyword(bln.tokens)
		if kw == token.KW_DATA || kw == token.KW_FUNC {
			hasInlineBlocks = true
			break
		}
	}

	if hasInlineBlocks {
		for j := 0; j < len(body); {
			bln := body[j]
			if bln.level != body[0].level {
				j++
				continue
			}
			switch leadingKeyword(bln.tokens) {
			case token.KW_DATA:
				nested := extractBody(body, j)
				n := 1 + len(nested)
				save := p.node
				scratch := newFileNode(p.file, p.node.Lines)
				p.node = scratch
				synthetic := line{tokens: token.List{bln.tokens[0], makeIdentToken(name+"__D", bln.pos)}, pos: bln.pos, level: bln.level}
				full := append([]line{synthetic}, nested...)
				p.parseDataDef(full, 0)
				p.node = save
				if dd, ok := scratch.ByName[name+"__D"].(*ast.DataDef); ok {
					def.InlineData = dd
				}
				j += n
			case token.KW_FUNC:
				nested := extractBody(body, j)
				n := 1 + len(nested)
				save := p.node
				scratch := newFileNode(p.file, p.node.Lines)
				p.node = scratch
				synthetic := line{tokens: token.List{bln.tokens[0], makeIdentToken(name+"__F", bln.pos)}, pos: bln.pos, level: bln.level}
				full := append([]line{synthetic}, nested...)
				p.parseFuncModuleDef(full, 0)
				p.node = save
				if fd, ok := scratch.ByName[name+"__F"].(*ast.FuncDef); ok {
					def.InlineFunc = fd
				}
				j += n
			case token.KW_LINK:
				nested := extractBody(body, j)
				def.Links = p.parseLinkMappings(nested)
				j += 1 + len(nested)
			default:
				if def.InlineFunc != nil {
					for _, fn := range def.InlineFunc.Functions {
						if fn.Name == name {
							p.report(diag.KindEntityWrongConstructorName, ln.pos, func(d *diag.Diagnostic) { d.Name = fn.Name })
						}
					}
				}
				j++
			}
		}
	} else {
		def.Modular = true
		i := 2
		for i < len(ln.tokens) {
			switch ln.tokens[i].Kind {
			case token.KW_DATA:
				i++
				for i < len(ln.tokens) && ln.tokens[i].Kind == token.IDENTIFIER {
					n := ln.tokens[i].Text()
					for _, existing := range def.DataNames {
						if existing == n {
							p.report(diag.KindEntityDuplicateData, ln.pos, func(d *diag.Diagnostic) { d.Name = name; d.Name2 = n })
						}
					}
					def.DataNames = append(def.DataNames, n)
					i++
					if i < len(ln.tokens) && ln.tokens[i].Kind == token.COMMA {
						i++
					}
				}
			case token.KW_FUNC:
				i++
				for i < len(ln.tokens) && ln.tokens[i].Kind == token.IDENTIFIER {
					n := ln.tokens[i].Text()
					for _, existing := range def.FuncNames {
						if existing == n {
							p.report(diag.KindEntityDuplicateFunc, ln.pos, func(d *diag.Diagnostic) { d.Name = name; d.Name2 = n })
						}
					}
					def.FuncNames = append(def.FuncNames, n)
					i++
					if i < len(ln.tokens) && ln.tokens[i].Kind == token.COMMA {
						i++
					}
				}
			default:
				i++
			}
		}
		if len(def.DataNames) == 0 {
			p.report(diag.KindEntityMissingData, ln.pos, nil)
		}
		for j := 0; j < len(body); j++ {
			if body[j].level == body[0].level && leadingKeyword(body[j].tokens) == token.KW_LINK {
				nested := extractBody(body, j)
				def.Links = p.parseLinkMappings(nested)
			}
		}
	}

	p.node.add(def, name)
	return consumed
}

func makeIdentToken(name string, pos token.Position) token.PositionedToken {
	return token.PositionedToken{Kind: token.IDENTIFIER, Pos: pos, Lexeme: token.NewLexeme([]byte(name), 0, len(name))}
}

// parseLinkMappings reads `a::b -> c::d` entries, one per line: tokens
// [IDENT DOUBLE_COLON IDENT ARROW IDENT DOUBLE_COLON IDENT].
func (p *Parser) parseLinkMappings(lines []line) []ast.LinkMapping {
	var out []ast.LinkMapping
	for _, ln := range lines {
		toks := ln.tokens
		if len(toks) < 7 {
			continue
		}
		if toks[1].Kind != token.DOUBLE_COLON || toks[3].Kind != token.ARROW || toks[5].Kind != token.DOUBLE_COLON {
			continue
		}
		out = append(out, ast.LinkMapping{
			FromData: toks[0].Text(), FromName: toks[2].Text(),
			ToData: toks[4].Text(), ToName: toks[6].Text(),
		})
	}
	return out
}

// parseEnumDef parses `enum NAME: VALUE1; VALUE2; ...`.
func (p *Parser) parseEnumDef(lines []line, idx int) int {
	ln := lines[idx]
	body := extractBody(lines, idx)
	consumed := 1 + len(body)
	if len(ln.tokens) < 2 || ln.tokens[1].Kind != token.IDENTIFIER {
		return consumed
	}
	def := &ast.EnumDef{Pos: astPos(p.file, ln.pos, 0), Name: ln.tokens[1].Text()}
	for _, bln := range body {
		for _, t := range bln.tokens {
			if t.Kind == token.IDENTIFIER {
				def.Values = append(def.Values, t.Text())
			}
		}
	}
	p.node.add(def, def.Name)
	return consumed
}

// parseErrorDef parses `error NAME [extends PARENT]: TAG1; TAG2; ...`
// (SPEC_FULL.md's supplemented single-parent extension rule).
func (p *Parser) parseErrorDef(lines []line, idx int) int {
	ln := lines[idx]
	body := extractBody(lines, idx)
	consumed := 1 + len(body)
	if len(ln.tokens) < 2 || ln.tokens[1].Kind != token.IDENTIFIER {
		return consumed
	}
	def := &ast.ErrorDef{Pos: astPos(p.file, ln.pos, 0), Name: ln.tokens[1].Text()}
	i := 2
	if i < len(ln.tokens) && ln.tokens[i].Kind == token.KW_EXTENDS {
		i++
		if i < len(ln.tokens) && ln.tokens[i].Kind == token.IDENTIFIER {
			def.Parent = ln.tokens[i].Text()
			i++
		}
		for i < len(ln.tokens) && ln.tokens[i].Kind == token.IDENTIFIER {
			p.report(diag.KindErrSetExtendingMultipleParents, ln.pos, func(d *diag.Diagnostic) { d.Name = def.Name })
			i++
		}
	}
	for _, bln := range body {
		for _, t := range bln.tokens {
			if t.Kind == token.IDENTIFIER {
				def.Tags = append(def.Tags, t.Text())
			}
		}
	}
	p.node.add(def, def.Name)
	return consumed
}

// parseVariantDef parses `variant NAME: TYPE1 NAME1; TYPE2 NAME2; ...`.
func (p *Parser) parseVariantDef(lines []line, idx int) int {
	ln := lines[idx]
	body := extractBody(lines, idx)
	consumed := 1 + len(body)
	if len(ln.tokens) < 2 || ln.tokens[1].Kind != token.IDENTIFIER {
		return consumed
	}
	def := &ast.VariantDef{Pos: astPos(p.file, ln.pos, 0), Name: ln.tokens[1].Text()}
	for _, bln := range body {
		toks := bln.tokens
		t, ti, ok := p.parseTypeRef(toks, 0)
		if !ok || ti >= len(toks) || toks[ti].Kind != token.IDENTIFIER {
			continue
		}
		def.Members = append(def.Members, ast.VariantMember{Name: toks[ti].Text(), Type: t})
	}
	p.node.add(def, def.Name)
	return consumed
}

// parseTestDef parses `test "NAME":` with a normal statement body.
func (p *Parser) parseTestDef(lines []line, idx int) int {
	ln := lines[idx]
	body := extractBody(lines, idx)
	consumed := 1 + len(body)
	name := ""
	if len(ln.tokens) > 1 && ln.tokens[1].Kind == token.STR_VALUE {
		name = unquoteImportPath(ln.tokens[1].Text())
	}
	if p.node.ByName[name] != nil {
		p.report(diag.KindTestRedefinition, ln.pos, func(d *diag.Diagnostic) { d.Name = name })
	}
	arena := newArenaWithParams(nil)
	def := &ast.TestDef{Pos: astPos(p.file, ln.pos, 0), Name: name, Body: p.parseBody(body, arena, scopeGlobal)}
	p.node.add(def, name)
	return consumed
}
