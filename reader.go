package ptape

// Operator is the separator a reader observed between a key and its
// value. The tape itself never distinguishes '=' from '==' (see
// DESIGN.md's notes on the operator Open Question); Operator exists
// so a future tape extension recording that distinction would not
// change Reader's call signature.
type Operator uint8

// OpEqual is the only Operator value a Reader currently produces.
const OpEqual Operator = 0

// Reader walks one container level of a Tape, yielding
// (key, operator, value) triples without re-scanning the original
// input. Nested container values are returned as their opening Token
// (carrying the matching End index), so a caller can either skip past
// them in one step or descend into them with a child Reader.
type Reader struct {
	tape     *Tape
	pos      int
	end      int
	valuePos int
}

// NewReader returns a Reader over the object body spanning
// [start, end) of tape. Pass 0, tape.Len() to read the top-level
// sequence of key/value pairs a successful parse produces.
func NewReader(tape *Tape, start, end int) *Reader {
	return &Reader{tape: tape, pos: start, end: end}
}

// Reader returns a Reader over the tape's top-level fields.
func (t *Tape) Reader() *Reader {
	return NewReader(t, 0, t.Len())
}

// ChildReader returns a Reader over the body of the container Token
// opens, i.e. the span (containerPos, containerPos.End).
func (t *Tape) ChildReader(containerPos int) *Reader {
	open := t.At(containerPos)
	return NewReader(t, containerPos+1, open.End)
}

// NextField returns the next key, operator, and value at this
// reader's level, or ok=false once the level is exhausted. The
// returned value's Token may itself be a container open token; use
// ChildReader on its position (available via Reader.ValuePos after a
// NextField call) to descend into it.
func (r *Reader) NextField() (key Scalar, op Operator, value Token, ok bool) {
	if r.pos >= r.end {
		return Scalar{}, OpEqual, Token{}, false
	}

	keyTok := r.tape.At(r.pos)
	key = keyTok.Scalar
	r.pos++

	if r.pos >= r.end {
		return key, OpEqual, Token{}, false
	}

	value = r.tape.At(r.pos)
	r.valuePos = r.pos
	switch value.Kind {
	case KindArray, KindObject:
		r.pos = value.End + 1
	default:
		r.pos++
	}

	return key, OpEqual, value, true
}

// ValuePos returns the tape index of the value returned by the most
// recent NextField call, suitable for passing to Tape.ChildReader
// when that value was a container.
func (r *Reader) ValuePos() int { return r.valuePos }
