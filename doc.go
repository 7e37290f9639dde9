// Package ptape provides a high-throughput parser for the plain-text
// key/value save and configuration format shared by a family of grand
// strategy games.
//
// # Overview
//
// The format is a permissive key/value language with nested objects,
// arrays, quoted and unquoted scalars, line comments, and a handful of
// ad-hoc extensions: rgb literals, hidden objects inside arrays, and
// colon-prefixed/at-sigil identifiers.
//
//	foo = bar
//	fleet = {
//	    name = "First Fleet"
//	    ships = { "Devastator" "Interceptor" }
//	    color = rgb { 100 200 150 }
//	}
//
// Parsing is a single forward pass over a byte slice that produces a
// flat, index-linked token sequence (a Tape) with no per-token
// allocation. Scalars are never eagerly decoded: a Scalar borrows the
// raw bytes it was extracted from and only materializes a string,
// integer, float, or boolean when a caller asks for one.
//
// # Basic Usage
//
//	tape, err := ptape.Parse([]byte(`foo={bar=qux}`), ptape.Windows1252Encoding{})
//	if err != nil {
//	    // err wraps a *ptape.Error (see errors.As) carrying a byte offset
//	}
//	reader := tape.Reader()
//	for {
//	    key, _, value, ok := reader.NextField()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(key.String(), value.Scalar.String())
//	}
//
// # What This Package Is Not
//
// This package parses plain text only. The sibling binary tape format,
// the structured deserializer that binds a Tape to user record types,
// and the token-id-to-name resolver used by the binary format are
// external collaborators this package does not implement; it exposes
// only the Tape/Reader surface they would consume.
//
// # Performance Characteristics
//
// The parser targets roughly 1 GB/s on typical save files. SWAR
// (SIMD-within-a-register) primitives drive quoted-scalar scanning,
// decimal-digit validation, and the ASCII/backslash check ahead of
// Windows-1252 to UTF-8 transcoding: each processes eight bytes per
// iteration before falling back to a byte-at-a-time tail. Whitespace
// and comment skipping, and the transcoding itself, run a byte at a
// time.
package ptape
