package ptape

// tapeSizeHeuristic estimates the number of tokens a parse of
// inputLen bytes will produce, used to pre-size the backing slice and
// avoid repeated growth during the hot loop.
func tapeSizeHeuristic(inputLen int) int {
	return inputLen*15/100 + 1
}

// Tape is the flat, contiguous output of a single parse: a sequence
// of Tokens with no per-token allocation. It is populated by exactly
// one parse call and is read-only to everything downstream.
//
// Container linkage invariant: for every Array or Object token at
// position p with End == e, the token at e is an End with Start == p,
// and vice versa. Containers nest strictly. During a parse, a written
// position changes only when a provisional Array(0) placeholder is
// patched into its final Array(end) or Object(end) value, or when the
// hidden-object rule inserts an Object token before the most recent
// array element, shifting that element one slot right. The tape is
// not changed after the parse returns.
type Tape struct {
	tokens []Token
}

// NewTape returns an empty Tape pre-sized for an input of roughly
// inputLen bytes.
func NewTape(inputLen int) *Tape {
	return &Tape{tokens: make([]Token, 0, tapeSizeHeuristic(inputLen))}
}

// Reset clears t's contents so it can be reused by ParseInto without
// a fresh allocation. The backing array is kept.
func (t *Tape) Reset() {
	t.tokens = t.tokens[:0]
}

// Len returns the number of tokens in the tape.
func (t *Tape) Len() int { return len(t.tokens) }

// At returns the token at index i. It panics if i is out of range,
// matching slice indexing semantics.
func (t *Tape) At(i int) Token { return t.tokens[i] }

// Tokens returns the tape's tokens as a read-only view. Callers must
// not mutate the returned slice.
func (t *Tape) Tokens() []Token { return t.tokens }

func (t *Tape) push(tok Token) int {
	t.tokens = append(t.tokens, tok)
	return len(t.tokens) - 1
}

func (t *Tape) patchEnd(pos, end int) {
	t.tokens[pos].End = end
}

func (t *Tape) setKind(pos int, kind TokenKind) {
	t.tokens[pos].Kind = kind
}

// insertBefore inserts tok at index pos, shifting the tokens from pos
// onward right by one. Used exactly once, by the hidden-object rule in parser.go,
// which must retroactively wrap an already-pushed array element in a
// synthetic Object token.
func (t *Tape) insertBefore(pos int, tok Token) {
	t.tokens = append(t.tokens, Token{})
	copy(t.tokens[pos+1:], t.tokens[pos:])
	t.tokens[pos] = tok
}
