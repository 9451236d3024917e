package token

// Kind identifies the lexical category of a Token. Groups are laid out in
// iota blocks with sentinel markers so IsLiteral/IsKeyword can be answered
// with a single range check instead of a lookup table.
type Kind int

const (
	ILLEGAL Kind = iota
	EOF

	// Identifiers and literals.
	IDENT
	INT
	FLOAT
	STRING
	CHAR
	TRUE
	FALSE

	literalEnd

	// Keywords.
	FN
	LET
	CONST
	IF
	ELSE
	WHILE
	RETURN

	keywordEnd

	// Built-in type names, usable only in a declared-type position.
	TYPE_I32
	TYPE_F64
	TYPE_STR
	TYPE_CHAR
	TYPE_BOOL

	// Built-in function name.
	BUILTIN_PRINT

	// Assignment.
	ASSIGN

	// Operators (see Operator for the disambiguated semantic tag carried
	// alongside OPERATOR tokens).
	OPERATOR

	// Delimiters.
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET

	// Punctuation.
	COMMA
	SEMICOLON
	COLON

	FAT_ARROW
)

var kindNames = map[Kind]string{
	ILLEGAL:       "ILLEGAL",
	EOF:           "EOF",
	IDENT:         "IDENT",
	INT:           "INT",
	FLOAT:         "FLOAT",
	STRING:        "STRING",
	CHAR:          "CHAR",
	TRUE:          "TRUE",
	FALSE:         "FALSE",
	FN:            "fn",
	LET:           "let",
	CONST:         "const",
	IF:            "if",
	ELSE:          "else",
	WHILE:         "while",
	RETURN:        "return",
	TYPE_I32:      "i32",
	TYPE_F64:      "f64",
	TYPE_STR:      "str",
	TYPE_CHAR:     "char",
	TYPE_BOOL:     "bool",
	BUILTIN_PRINT: "print",
	ASSIGN:        "=",
	OPERATOR:      "OPERATOR",
	LPAREN:        "(",
	RPAREN:        ")",
	LBRACE:        "{",
	RBRACE:        "}",
	LBRACKET:      "[",
	RBRACKET:      "]",
	COMMA:         ",",
	SEMICOLON:     ";",
	COLON:         ":",
	FAT_ARROW:     "=>",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsLiteral reports whether k is one of the literal-value kinds.
func (k Kind) IsLiteral() bool {
	return k > IDENT && k < literalEnd
}

// IsKeyword reports whether k is one of the reserved-word kinds.
func (k Kind) IsKeyword() bool {
	return k > literalEnd && k < keywordEnd
}

// keywords maps reserved-word lexemes to their Kind, checked before an
// identifier run falls back to IDENT. true/false are included here too
// since the scanner's keyword table is what emits boolean literals.
var keywords = map[string]Kind{
	"fn":     FN,
	"let":    LET,
	"const":  CONST,
	"if":     IF,
	"else":   ELSE,
	"while":  WHILE,
	"return": RETURN,
	"true":   TRUE,
	"false":  FALSE,
}

// typeNames maps built-in type-name lexemes to their Kind.
var typeNames = map[string]Kind{
	"i32":  TYPE_I32,
	"f64":  TYPE_F64,
	"str":  TYPE_STR,
	"char": TYPE_CHAR,
	"bool": TYPE_BOOL,
}

// builtinFuncs maps built-in function-name lexemes to their Kind.
var builtinFuncs = map[string]Kind{
	"print": BUILTIN_PRINT,
}

// LookupIdent classifies an alphanumeric run: keyword, then built-in
// type name, then built-in function name, otherwise a plain identifier.
func LookupIdent(lexeme string) Kind {
	if kind, ok := keywords[lexeme]; ok {
		return kind
	}
	if kind, ok := typeNames[lexeme]; ok {
		return kind
	}
	if kind, ok := builtinFuncs[lexeme]; ok {
		return kind
	}
	return IDENT
}

// Operator is the closed set of arithmetic/logical/bitwise/comparison
// operators. Plus/Minus double as Identity/Negation's binary forms; the
// scanner disambiguates prefix-vs-infix and emits the matching Operator.
type Operator int

const (
	Plus Operator = iota
	Minus
	Asterisk
	Slash
	Modulo
	Caret
	BitwiseAnd
	BitwiseOr
	LeftShift
	RightShift
	LessThan
	GreaterThan
	LessThanOrEqual
	GreaterThanOrEqual
	Equals
	NotEqual
	And
	Or
	Not
	Identity
	Negation
)

var operatorNames = map[Operator]string{
	Plus:               "+",
	Minus:              "-",
	Asterisk:           "*",
	Slash:              "/",
	Modulo:             "%",
	Caret:              "^",
	BitwiseAnd:         "&",
	BitwiseOr:          "|",
	LeftShift:          "<<",
	RightShift:         ">>",
	LessThan:           "<",
	GreaterThan:        ">",
	LessThanOrEqual:    "<=",
	GreaterThanOrEqual: ">=",
	Equals:             "==",
	NotEqual:           "!=",
	And:                "&&",
	Or:                 "||",
	Not:                "!",
	Identity:           "+",
	Negation:           "-",
}

func (op Operator) String() string {
	if name, ok := operatorNames[op]; ok {
		return name
	}
	return "?"
}

// IsPrefix reports whether op may appear as a prefix operator.
func (op Operator) IsPrefix() bool {
	switch op {
	case Not, Identity, Negation:
		return true
	default:
		return false
	}
}

// IsInfix reports whether op may appear as an infix operator.
func (op Operator) IsInfix() bool {
	switch op {
	case Not, Identity, Negation:
		return false
	default:
		return true
	}
}

// Token is a single scanned lexeme: its Kind, the raw source slice (when
// meaningful), its Operator sub-tag (when Kind == OPERATOR), and its
// source Position.
type Token struct {
	Kind    Kind
	Literal string
	Op      Operator
	Pos     Position
}

// IsExpressionTerminator reports whether a token of this kind can be the
// last token of a complete expression — the set the scanner consults to
// decide whether a following +/- is prefix or infix.
func (t Token) IsExpressionTerminator() bool {
	switch t.Kind {
	case IDENT, INT, FLOAT, STRING, CHAR, TRUE, FALSE, BUILTIN_PRINT, RPAREN, RBRACKET, RBRACE:
		return true
	default:
		return false
	}
}
