package ptape

import "fmt"

// parseState is one of the twelve states of the text tape state
// machine (see parseState constants below).
type parseState uint8

const (
	stateKey parseState = iota
	stateKeyValueSeparator
	stateObjectValue
	stateParseOpen
	stateFirstValue
	stateArrayValue
	stateEmptyObject
	stateRgbOpen
	stateRgbR
	stateRgbG
	stateRgbB
	stateRgbClose
)

// noParent is the sentinel parent index meaning "no enclosing
// container" (the implicit root object at depth 0).
const noParent = 0

// Parse parses data under the given encoding into a freshly allocated
// Tape.
func Parse(data []byte, enc Encoding) (*Tape, error) {
	tape := NewTape(len(data))
	if err := ParseInto(data, enc, tape); err != nil {
		return nil, err
	}
	return tape, nil
}

// ParseWindows1252 parses data as Windows-1252 text.
func ParseWindows1252(data []byte) (*Tape, error) {
	return Parse(data, Windows1252Encoding{})
}

// ParseUTF8 parses data as UTF-8 text.
func ParseUTF8(data []byte) (*Tape, error) {
	return Parse(data, UTF8Encoding{})
}

// ParseInto parses data into tape, clearing any prior contents first.
// This lets a caller reuse one Tape's backing array across many
// parses instead of allocating a fresh one each time.
func ParseInto(data []byte, enc Encoding, tape *Tape) error {
	tape.Reset()
	p := parser{
		data:         data,
		originalLen:  len(data),
		enc:          enc,
		tape:         tape,
		hiddenObjArr: -1,
	}
	return p.parse()
}

type parser struct {
	data        []byte
	originalLen int
	enc         Encoding

	tape *Tape

	// hiddenObjArr tracks the array index currently masquerading as a
	// hidden object's parent, or -1 when no hidden object is open.
	// See the ArrayValue '=' case below.
	hiddenObjArr int
}

func (p *parser) offset(remaining []byte) int {
	return p.originalLen - len(remaining)
}

// skipWhitespaceAndComments advances past whitespace and #-to-EOL
// comments, repeating until a significant byte is found or input is
// exhausted.
func (p *parser) skipWhitespaceAndComments(data []byte) []byte {
	for {
		i := 0
		for i < len(data) && isWhitespace(data[i]) {
			i++
		}
		data = data[i:]

		if len(data) > 0 && data[0] == '#' {
			nl := -1
			for j, c := range data {
				if c == '\n' {
					nl = j
					break
				}
			}
			if nl < 0 {
				return nil
			}
			data = data[nl:]
			continue
		}
		return data
	}
}

// splitAtScalar extracts a bare (unquoted) scalar: bytes up to the
// first boundary byte, but always at least one byte (so a leading '='
// becomes a standalone "=" scalar: at key position, "==bar" parses as
// the key "=", the '=' separator, and the value "bar").
func (p *parser) splitAtScalar(d []byte) (Scalar, []byte) {
	i := 0
	for i < len(d) && !isBoundary(d[i]) {
		i++
	}
	if i < 1 {
		i = 1
	}
	return p.enc.scalar(d[:i]), d[i:]
}

// parseQuotedScalar scans for an unescaped closing quote, eight bytes
// at a time, falling back to a bytewise scan through any chunk that
// contains a backslash.
func (p *parser) parseQuotedScalar(d []byte) (Scalar, []byte, error) {
	sd := d[1:]
	offset := 0
	backslash := repeatByte('\\')
	quote := repeatByte('"')

	n := len(sd)
	for offset+8 <= n {
		chunk := sd[offset : offset+8]
		acc := leU64(chunk)
		if containsZeroByte(acc^backslash) != 0 {
			return p.parseQuotedScalarFallback(d)
		}
		if mask := containsZeroByte(acc ^ quote); mask != 0 {
			end := offset + firstMatchingByte(mask)
			return p.enc.scalar(sd[:end]), d[end+2:], nil
		}
		offset += 8
	}

	for pos := offset; pos < n; pos++ {
		if sd[pos] == '\\' {
			pos++
			continue
		}
		if sd[pos] == '"' {
			return p.enc.scalar(sd[:pos]), d[pos+2:], nil
		}
	}

	return Scalar{}, nil, errEOF()
}

// parseQuotedScalarFallback handles escape sequences bytewise. Used
// once a fast chunk contains a backslash; escaped strings are rare
// enough that the slower path doesn't matter for throughput.
func (p *parser) parseQuotedScalarFallback(d []byte) (Scalar, []byte, error) {
	pos := 1
	for pos < len(d) {
		switch d[pos] {
		case '\\':
			pos += 2
		case '"':
			return p.enc.scalar(d[1:pos]), d[pos+1:], nil
		default:
			pos++
		}
	}
	return Scalar{}, nil, errEOF()
}

func (p *parser) parseKeyValueSeparator(d []byte) []byte {
	if len(d) > 0 && d[0] == '=' {
		return d[1:]
	}
	return d
}

// containerTag reports which container kind governs continuation
// after a close: ArrayValue for an Array, Key for an Object or for no
// enclosing container at all.
func (p *parser) containerTag(ind int) parseState {
	if ind >= p.tape.Len() {
		return stateKey
	}
	switch p.tape.At(ind).Kind {
	case KindArray:
		return stateArrayValue
	default:
		return stateKey
	}
}

func (p *parser) parse() error {
	data := p.data
	state := stateKey
	var red, green, blue uint32
	parentInd := noParent

	for {
		data = p.skipWhitespaceAndComments(data)
		if len(data) == 0 {
			if state == stateRgbOpen {
				state = stateKey
				p.tape.push(scalarToken(p.enc.scalar([]byte("rgb"))))
			}
			if parentInd == noParent && state == stateKey {
				return nil
			}
			return errEOF()
		}

		switch state {
		case stateEmptyObject:
			if data[0] != '}' {
				return errInvalidEmptyObject(p.offset(data))
			}
			data = data[1:]
			state = stateKey

		case stateKey:
			switch data[0] {
			case '}':
				var grandInd int
				if parentInd < p.tape.Len() {
					t := p.tape.At(parentInd)
					if t.Kind == KindArray || t.Kind == KindObject {
						grandInd = t.End
					}
				}
				state = p.containerTag(grandInd)

				endIdx := p.tape.Len()
				if parentInd == noParent && grandInd == noParent {
					return errStackEmpty(p.offset(data))
				}

				p.tape.setKind(parentInd, KindObject)
				p.tape.patchEnd(parentInd, endIdx)
				p.tape.push(endToken(parentInd))

				if p.hiddenObjArr >= 0 {
					arrInd := p.hiddenObjArr
					p.hiddenObjArr = -1
					endIdx2 := p.tape.Len()
					p.tape.push(endToken(arrInd))

					var grandInd2 int
					if arrInd < p.tape.Len() {
						t := p.tape.At(arrInd)
						if t.Kind == KindArray {
							grandInd2 = t.End
						}
					}
					p.tape.setKind(arrInd, KindArray)
					p.tape.patchEnd(arrInd, endIdx2)

					state = p.containerTag(grandInd2)
					parentInd = grandInd2
				} else {
					parentInd = grandInd
				}

				data = data[1:]

			case '{':
				// Empty-object sentinel at key position: swallow
				// silently, emit nothing.
				data = data[1:]
				state = stateEmptyObject

			case '"':
				scalar, rest, err := p.parseQuotedScalar(data)
				if err != nil {
					return err
				}
				p.tape.push(scalarToken(scalar))
				data = rest
				state = stateKeyValueSeparator

			default:
				scalar, rest := p.splitAtScalar(data)
				p.tape.push(scalarToken(scalar))
				data = rest
				state = stateKeyValueSeparator
			}

		case stateKeyValueSeparator:
			data = p.parseKeyValueSeparator(data)
			state = stateObjectValue

		case stateObjectValue:
			switch data[0] {
			case '{':
				p.tape.push(arrayToken(0))
				state = stateParseOpen
				data = data[1:]

			case '}':
				// Don't parse too far into the object's array trailer.
				state = stateKey

			case '"':
				scalar, rest, err := p.parseQuotedScalar(data)
				if err != nil {
					return err
				}
				p.tape.push(scalarToken(scalar))
				data = rest
				state = stateKey

			case 'r':
				rgbDetected := len(data) > 3 &&
					data[1] == 'g' && data[2] == 'b' && isBoundary(data[3])
				if rgbDetected {
					data = data[3:]
					state = stateRgbOpen
				} else {
					scalar, rest := p.splitAtScalar(data)
					p.tape.push(scalarToken(scalar))
					data = rest
					state = stateKey
				}

			default:
				scalar, rest := p.splitAtScalar(data)
				p.tape.push(scalarToken(scalar))
				data = rest
				state = stateKey
			}

		case stateParseOpen:
			switch data[0] {
			case '}':
				ind := p.tape.Len() - 1
				state = p.containerTag(parentInd)
				p.tape.setKind(ind, KindArray)
				p.tape.patchEnd(ind, ind+1)
				p.tape.push(endToken(ind))
				data = data[1:]

			case '{':
				ind := p.tape.Len() - 1
				p.tape.setKind(ind, KindArray)
				p.tape.patchEnd(ind, parentInd)
				parentInd = ind
				state = stateArrayValue

			case '"':
				scalar, rest, err := p.parseQuotedScalar(data)
				if err != nil {
					return err
				}
				p.tape.push(scalarToken(scalar))
				data = rest
				state = stateFirstValue

			default:
				scalar, rest := p.splitAtScalar(data)
				p.tape.push(scalarToken(scalar))
				data = rest
				state = stateFirstValue
			}

		case stateFirstValue:
			if data[0] == '=' {
				ind := p.tape.Len() - 2
				p.tape.setKind(ind, KindObject)
				p.tape.patchEnd(ind, parentInd)
				data = data[1:]
				parentInd = ind
				state = stateObjectValue
			} else {
				ind := p.tape.Len() - 2
				p.tape.setKind(ind, KindArray)
				p.tape.patchEnd(ind, parentInd)
				parentInd = ind
				state = stateArrayValue
			}

		case stateArrayValue:
			switch data[0] {
			case '{':
				p.tape.push(arrayToken(0))
				state = stateParseOpen
				data = data[1:]

			case '}':
				var grandInd int
				if parentInd < p.tape.Len() {
					t := p.tape.At(parentInd)
					if t.Kind == KindArray || t.Kind == KindObject {
						grandInd = t.End
					}
				}
				state = p.containerTag(grandInd)

				endIdx := p.tape.Len()
				p.tape.setKind(parentInd, KindArray)
				p.tape.patchEnd(parentInd, endIdx)
				p.tape.push(endToken(parentInd))
				parentInd = grandInd
				data = data[1:]

			case '"':
				scalar, rest, err := p.parseQuotedScalar(data)
				if err != nil {
					return err
				}
				p.tape.push(scalarToken(scalar))
				data = rest
				state = stateArrayValue

			case '=':
				// A hidden object: an array element immediately
				// followed by '=' (CK3-style heterogeneous arrays).
				// Reparent the last-pushed element as the hidden
				// object's first key by inserting an Object token
				// just before it.
				p.hiddenObjArr = parentInd
				insertAt := p.tape.Len() - 1
				p.tape.insertBefore(insertAt, objectToken(parentInd))
				parentInd = insertAt
				state = stateObjectValue
				data = data[1:]

			default:
				scalar, rest := p.splitAtScalar(data)
				p.tape.push(scalarToken(scalar))
				data = rest
				state = stateArrayValue
			}

		case stateRgbOpen:
			if data[0] == '{' {
				data = data[1:]
				state = stateRgbR
			} else {
				state = stateKey
				p.tape.push(scalarToken(p.enc.scalar([]byte("rgb"))))
			}

		case stateRgbR:
			ch, rest, err := p.rgbChannel(data)
			if err != nil {
				return err
			}
			red = ch
			data = rest
			state = stateRgbG

		case stateRgbG:
			ch, rest, err := p.rgbChannel(data)
			if err != nil {
				return err
			}
			green = ch
			data = rest
			state = stateRgbB

		case stateRgbB:
			ch, rest, err := p.rgbChannel(data)
			if err != nil {
				return err
			}
			blue = ch
			data = rest
			state = stateRgbClose

		case stateRgbClose:
			if data[0] == '}' {
				p.tape.push(rgbToken(Rgb{R: red, G: green, B: blue}))
				data = data[1:]
				state = stateKey
			} else {
				return errInvalidSyntax(p.offset(data), "unable to detect rgb close")
			}
		}
	}
}

func (p *parser) rgbChannel(data []byte) (uint32, []byte, error) {
	scalar, rest := p.splitAtScalar(data)
	v, err := scalar.Uint64()
	if err != nil {
		return 0, nil, errInvalidSyntax(p.offset(data),
			fmt.Sprintf("unable to decode color channel: %s", scalar.String()))
	}
	return uint32(v), rest, nil
}
