package ptape

// Encoding is a factory that wraps a raw byte slice extracted by the
// parser into a Scalar of a particular kind. The parser holds its
// Encoding as an interface value and calls it once per extracted
// scalar.
type Encoding interface {
	// scalar builds a Scalar view over data without copying it.
	scalar(data []byte) Scalar
	// kind reports which EncodingKind this Encoding produces.
	kind() EncodingKind
}

// Windows1252Encoding decodes scalar bytes as single-byte
// Windows-1252 text (the legacy encoding used by most save files).
type Windows1252Encoding struct{}

func (Windows1252Encoding) scalar(data []byte) Scalar { return NewScalar(data, Windows1252) }
func (Windows1252Encoding) kind() EncodingKind        { return Windows1252 }

// UTF8Encoding decodes scalar bytes as UTF-8 text.
type UTF8Encoding struct{}

func (UTF8Encoding) scalar(data []byte) Scalar { return NewScalar(data, UTF8) }
func (UTF8Encoding) kind() EncodingKind        { return UTF8 }
