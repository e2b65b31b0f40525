package nlp

type tokenKind uint8

const (
	charToken tokenKind = iota
	startToken
	endToken
)

// Token is one position inside a word. Besides literal characters it encodes
// the start and the end of the word as their own values, so that bigrams can
// capture what words tend to begin and end with. The two markers live outside
// the character space entirely: a literal '^' or '$' in the input can never be
// mistaken for a marker.
type Token struct {
	kind tokenKind
	char rune
}

var (
	// Start marks the position before the first character of a word.
	Start = Token{kind: startToken}
	// End marks the position after the last character of a word.
	End = Token{kind: endToken}
)

// Char wraps a literal character in a Token.
func Char(r rune) Token {
	return Token{kind: charToken, char: r}
}

// String renders the token for diagnostics. Start renders as "^" and End as
// "$"; literal occurrences of those two characters are escaped so the output
// stays unambiguous.
func (t Token) String() string {
	switch t.kind {
	case startToken:
		return "^"
	case endToken:
		return "$"
	}
	if t.char == '^' || t.char == '$' {
		return `\` + string(t.char)
	}
	return string(t.char)
}

// Bigram is two adjacent tokens within a word. It is comparable and is used
// directly as a map key.
type Bigram struct {
	Prev Token
	Cur  Token
}

func (b Bigram) String() string {
	return b.Prev.String() + b.Cur.String()
}
