package diag

import (
	"fmt"
	"runtime"

	"github.com/standardbeagle/flintc/internal/source"
)

// Diagnostic is the single concrete type every error variant uses
// (spec.md §7: "a single emit operation is the only way to report an
// error"). Each Kind only reads the fields it needs; the rest stay zero.
// This is the sum-type-over-class-hierarchy translation from spec.md §9:
// one struct, one Kind enum, one render dispatch — no vtables, no
// downcasts.
type Diagnostic struct {
	Kind   Kind
	Stage  Stage
	File   source.FileHash
	Line   int
	Column int
	Length int

	// Variant-specific context. Not all fields apply to all Kinds; see
	// Message's switch for which fields each Kind reads.
	Name        string
	Name2       string
	TokenText   string
	Expected    string
	Got         string
	ArgCount    int
	ArgExpected int
	Suggestions []string

	// CallSite is the compiler-internal file:line of the emit() call
	// that produced this diagnostic, populated only when debug mode is
	// enabled (spec.md §4.5 "Failure policy").
	CallSite string
}

// Emit constructs the call site (when debugEnabled) and returns the
// diagnostic; it is the sole reporting entry point referenced by
// spec.md §7. Callers elsewhere just build Diagnostic values and append
// them to a []* Diagnostic — Emit exists to attach the call site
// uniformly at the single point every stage funnels through.
func Emit(d Diagnostic, debugEnabled bool) *Diagnostic {
	if debugEnabled {
		if _, file, line, ok := runtime.Caller(1); ok {
			d.CallSite = fmt.Sprintf("%s:%d", file, line)
		}
	}
	return &d
}

// Message renders the diagnostic's human-readable message, dispatching on
// Kind exactly once (spec.md §9: "Render dispatches by pattern match").
func (d *Diagnostic) Message() string {
	switch d.Kind {
	case KindUnterminatedMultilineComment:
		return "unterminated multiline comment"
	case KindUnterminatedString:
		return "unterminated string literal"
	case KindInvalidIdentifier:
		return fmt.Sprintf("invalid identifier %q: reserved prefix", d.Name)
	case KindLitCharLongerThanSingleCharacter:
		return fmt.Sprintf("character literal %q is longer than a single character", d.TokenText)
	case KindLitExpectedCharValue:
		return "expected a character value"
	case KindUnexpectedCharacter:
		return fmt.Sprintf("unexpected character %q", d.TokenText)
	case KindUnexpectedDigitAfterDot:
		return "expected a digit after '.'"
	case KindUnexpectedPipe:
		return "unexpected '|'"

	case KindDataRedefinition:
		return fmt.Sprintf("data module %q is already defined", d.Name)
	case KindDataDuplicateField:
		return fmt.Sprintf("data module %q has a duplicate field %q", d.Name, d.Name2)
	case KindEntityMissingData:
		return fmt.Sprintf("entity %q requires data module %q, which is not present", d.Name, d.Name2)
	case KindEntityDuplicateData:
		return fmt.Sprintf("entity %q lists data module %q more than once", d.Name, d.Name2)
	case KindEntityDuplicateFunc:
		return fmt.Sprintf("entity %q lists func module %q more than once", d.Name, d.Name2)
	case KindEntityWrongConstructorName:
		return fmt.Sprintf("entity %q's constructor must be named %q, found %q", d.Name, d.Name, d.Name2)
	case KindFuncRedefinition:
		return fmt.Sprintf("func module %q is already defined", d.Name)
	case KindFuncRequiringSameDataTwice:
		return fmt.Sprintf("func module %q requires data module %q more than once", d.Name, d.Name2)
	case KindFunctionRedefinition:
		return fmt.Sprintf("function %q is already defined", d.Name)
	case KindFnCannotReturnTuple:
		return fmt.Sprintf("function %q cannot return a bare tuple; wrap the return type in parentheses", d.Name)
	case KindFnMainRedefinition:
		return "function 'main' is already defined"
	case KindFnMainWrongSignature:
		return "function 'main' has an invalid signature"
	case KindFnMainTooManyArgs:
		return "function 'main' takes at most one argument"
	case KindFnMainWrongArgType:
		return "function 'main's only argument must be 'str[] args'"
	case KindFnMainErrSet:
		return "function 'main' cannot declare an error set"
	case KindFnMainNoReturns:
		return "function 'main' cannot declare a return type"
	case KindFnReservedName:
		return fmt.Sprintf("function name %q is reserved", d.Name)
	case KindTestRedefinition:
		return fmt.Sprintf("test %q is already defined", d.Name)
	case KindErrSetExtendingMultipleParents:
		return fmt.Sprintf("error set %q extends more than one parent", d.Name)
	case KindAliasNotFound:
		return fmt.Sprintf("alias %q is not defined", d.Name)
	case KindAliasedSymbolNotFound:
		return fmt.Sprintf("%q::%q was not found in the aliased file", d.Name, d.Name2)
	case KindCoreModuleNotFound:
		return fmt.Sprintf("Core.%s is not a known core module", d.Name)
	case KindImportSameFileTwice:
		return fmt.Sprintf("%q is imported more than once", d.Name)
	case KindImportNonexistent:
		return fmt.Sprintf("imported file %q does not exist", d.Name)
	case KindImportExitedCWD:
		return fmt.Sprintf("import %q escapes the compiler's working directory", d.Name)
	case KindUseStatementNotAtTopLevel:
		return "use statements must appear at file scope"

	case KindExprBinopCreationFailed:
		return "could not build binary expression"
	case KindExprBinopTypeMismatch:
		return fmt.Sprintf("mismatched operand types: %s vs %s", d.Expected, d.Got)
	case KindExprCallOfUndefinedFunction:
		msg := fmt.Sprintf("call to undefined function %q", d.Name)
		if len(d.Suggestions) > 0 {
			msg += fmt.Sprintf(" (did you mean: %v?)", d.Suggestions)
		}
		return msg
	case KindExprCallWrongArgumentCount:
		return fmt.Sprintf("%q expects %d argument(s), got %d", d.Name, d.ArgExpected, d.ArgCount)
	case KindExprCallWrongArgumentTypeBuiltin:
		return fmt.Sprintf("wrong argument type for built-in %q: expected %s, got %s", d.Name, d.Expected, d.Got)
	case KindExprNestedGroup:
		return "nested parenthesized groups are not allowed"
	case KindExprTupleAccessOutOfBounds:
		return fmt.Sprintf("tuple index %s is out of bounds", d.TokenText)
	case KindExprInterpolationSingleExpression:
		return "string interpolation with a single expression — use str(x) instead"
	case KindExprTypeMismatch:
		return fmt.Sprintf("type mismatch: expected %s, got %s", d.Expected, d.Got)
	case KindExprUnknownLiteral:
		return fmt.Sprintf("unknown literal %q", d.TokenText)
	case KindExprVariableCreationFailed:
		return fmt.Sprintf("could not resolve variable %q", d.Name)

	case KindStmtAssignmentCreationFailed:
		return "could not build assignment statement"
	case KindStmtCatchCreationFailed:
		return "could not build catch statement"
	case KindStmtDeclarationCreationFailed:
		return "could not build declaration statement"
	case KindStmtForCreationFailed:
		return "could not build for statement"
	case KindStmtIfCreationFailed:
		return "could not build if statement"
	case KindStmtReturnCreationFailed:
		return "could not build return statement"
	case KindStmtThrowCreationFailed:
		return "could not build throw statement"
	case KindStmtWhileCreationFailed:
		return "could not build while statement"
	case KindStmtDanglingElse:
		return "'else' without a preceding 'if'"
	case KindStmtDanglingCatch:
		return "'catch' without a preceding expression that can throw"
	case KindStmtDanglingEqualSign:
		return "'=' without a preceding declared variable"
	case KindStmtIfChainMissingIf:
		return "if-chain is missing its leading 'if'"
	case KindMissingBody:
		return fmt.Sprintf("%q requires a body, but none was found", d.Name)
	case KindUnclosedParen:
		return "unclosed '('"
	case KindVarRedefinition:
		return fmt.Sprintf("variable %q is already declared in this scope", d.Name)
	case KindVarNotDeclared:
		msg := fmt.Sprintf("variable %q is not declared", d.Name)
		if len(d.Suggestions) > 0 {
			msg += fmt.Sprintf(" (did you mean: %v?)", d.Suggestions)
		}
		return msg
	case KindVarMutatingConst:
		return fmt.Sprintf("cannot assign to const variable %q", d.Name)
	case KindVarFromRequiresList:
		return fmt.Sprintf("%q shadows a name from the enclosing func module's requires list", d.Name)

	case KindTupleMultiTypeOverlap:
		return "tuple type overlaps with a multi-type declaration"

	case KindFIPNoDirectory:
		return "no .fip directory found for this project"
	case KindFIPAmbiguousModuleTag:
		return fmt.Sprintf("module tag %q is ambiguous across multiple .fip entries", d.Name)
	case KindExternDuplicateFunction:
		return fmt.Sprintf("extern function %q is already declared", d.Name)
	case KindExternNotFound:
		return fmt.Sprintf("extern function %q was not found in any .fip module", d.Name)
	case KindExternWithoutFIP:
		return fmt.Sprintf("extern function %q declared without a .fip directory", d.Name)

	case KindPointerTypeNotAllowedInNonExternContext:
		return "pointer types are only allowed in extern function signatures"
	case KindPointerTypeNotAllowedInVariant:
		return "pointer types are not allowed inside variant definitions"

	case KindResolverFileNotFound:
		return fmt.Sprintf("imported file %q could not be resolved", d.Name)
	case KindResolverCyclicImport:
		return fmt.Sprintf("cyclic import involving %q converted to a weak (forward-declared) edge", d.Name)
	case KindResolverLibraryNotFound:
		return fmt.Sprintf("library %q was not found in any library root", d.Name)

	case KindCliParsing:
		return fmt.Sprintf("invalid command line: %s", d.Name)

	default:
		return "unknown diagnostic"
	}
}
