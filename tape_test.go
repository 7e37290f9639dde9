package ptape

import "testing"

func TestTapeResetReusesBackingArray(t *testing.T) {
	tape := NewTape(64)
	capBefore := cap(tape.tokens)
	tape.push(scalarToken(NewScalar([]byte("x"), Windows1252)))
	tape.Reset()
	if tape.Len() != 0 {
		t.Fatalf("expected empty tape after Reset, got %d", tape.Len())
	}
	if cap(tape.tokens) != capBefore {
		t.Fatalf("expected Reset to keep the backing array (cap %d), got cap %d", capBefore, cap(tape.tokens))
	}
}

func TestTapeInsertBeforeShiftsTail(t *testing.T) {
	tape := NewTape(0)
	tape.push(sc("a"))
	tape.push(sc("b"))
	tape.push(sc("c"))
	tape.insertBefore(1, sc("x"))

	want := []Token{sc("a"), sc("x"), sc("b"), sc("c")}
	got := tape.Tokens()
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Scalar.String() != want[i].Scalar.String() {
			t.Fatalf("index %d: got %q want %q", i, got[i].Scalar.String(), want[i].Scalar.String())
		}
	}
}

func TestTapeLinkageInvariant(t *testing.T) {
	tape, err := ParseWindows1252([]byte("foo={bar=qux}"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, tok := range tape.Tokens() {
		switch tok.Kind {
		case KindArray, KindObject:
			closing := tape.At(tok.End)
			if closing.Kind != KindEnd || closing.Start != i {
				t.Fatalf("token %d: mismatched linkage to %d", i, tok.End)
			}
		case KindEnd:
			opening := tape.At(tok.Start)
			if opening.Kind != KindArray && opening.Kind != KindObject {
				t.Fatalf("token %d: End does not point at a container open", i)
			}
			if opening.End != i {
				t.Fatalf("token %d: End backlink mismatch", i)
			}
		}
	}
}
