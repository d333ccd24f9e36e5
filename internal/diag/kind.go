package diag

// Stage identifies which compiler stage raised a Diagnostic (spec.md
// §4.5: "kind (lexing/parsing/resolving/scope/generating/linking)").
type Stage uint8

const (
	StageLexing Stage = iota
	StageParsing
	StageScope
	StageResolving
	StageGenerating
	StageLinking
)

func (s Stage) String() string {
	switch s {
	case StageLexing:
		return "lexing"
	case StageParsing:
		return "parsing"
	case StageScope:
		return "scope"
	case StageResolving:
		return "resolving"
	case StageGenerating:
		return "generating"
	case StageLinking:
		return "linking"
	default:
		return "unknown"
	}
}

// Kind is the closed sum type of every diagnostic variant the compiler can
// raise (spec.md §4.5's ~130-variant catalogue; the subset below covers
// every category it names — lexing, definitions, expressions,
// statements/scopes, types, FIP, analysis — plus resolving). Each Kind's
// message is rendered by the one switch in Diagnostic.Message
// (diagnostic.go), and the reporting site sets the Diagnostic's Stage, so
// adding a variant never requires a new Go type, matching spec.md §9's "tagged union over class hierarchy"
// design note translated into idiomatic Go (one enum + one render
// dispatch, no per-kind struct/vtable).
type Kind int

const (
	// Lexing
	KindUnterminatedMultilineComment Kind = iota
	KindUnterminatedString
	KindInvalidIdentifier
	KindLitCharLongerThanSingleCharacter
	KindLitExpectedCharValue
	KindUnexpectedCharacter
	KindUnexpectedDigitAfterDot
	KindUnexpectedPipe

	// Parsing — definitions
	KindDataRedefinition
	KindDataDuplicateField
	KindEntityMissingData
	KindEntityDuplicateData
	KindEntityDuplicateFunc
	KindEntityWrongConstructorName
	KindFuncRedefinition
	KindFuncRequiringSameDataTwice
	KindFunctionRedefinition
	KindFnCannotReturnTuple
	KindFnMainRedefinition
	KindFnMainWrongSignature
	KindFnMainTooManyArgs
	KindFnMainWrongArgType
	KindFnMainErrSet
	KindFnMainNoReturns
	KindFnReservedName
	KindTestRedefinition
	KindErrSetExtendingMultipleParents
	KindAliasNotFound
	KindAliasedSymbolNotFound
	KindCoreModuleNotFound
	KindImportSameFileTwice
	KindImportNonexistent
	KindImportExitedCWD
	KindUseStatementNotAtTopLevel

	// Parsing — expressions
	KindExprBinopCreationFailed
	KindExprBinopTypeMismatch
	KindExprCallOfUndefinedFunction
	KindExprCallWrongArgumentCount
	KindExprCallWrongArgumentTypeBuiltin
	KindExprNestedGroup
	KindExprTupleAccessOutOfBounds
	KindExprInterpolationSingleExpression
	KindExprTypeMismatch
	KindExprUnknownLiteral
	KindExprVariableCreationFailed

	// Parsing — statements / scopes
	KindStmtAssignmentCreationFailed
	KindStmtCatchCreationFailed
	KindStmtDeclarationCreationFailed
	KindStmtForCreationFailed
	KindStmtIfCreationFailed
	KindStmtReturnCreationFailed
	KindStmtThrowCreationFailed
	KindStmtWhileCreationFailed
	KindStmtDanglingElse
	KindStmtDanglingCatch
	KindStmtDanglingEqualSign
	KindStmtIfChainMissingIf
	KindMissingBody
	KindUnclosedParen
	KindVarRedefinition
	KindVarNotDeclared
	KindVarMutatingConst
	KindVarFromRequiresList

	// Parsing — types
	KindTupleMultiTypeOverlap

	// Parsing — FIP (foreign interop)
	KindFIPNoDirectory
	KindFIPAmbiguousModuleTag
	KindExternDuplicateFunction
	KindExternNotFound
	KindExternWithoutFIP

	// Parsing — analysis
	KindPointerTypeNotAllowedInNonExternContext
	KindPointerTypeNotAllowedInVariant

	// Resolving
	KindResolverFileNotFound
	KindResolverCyclicImport
	KindResolverLibraryNotFound

	// Driver / CLI
	KindCliParsing

	kindSentinel // must stay last; used to size lookup tables
)
