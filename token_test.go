package ptape

import "testing"

func TestTokenConstructors(t *testing.T) {
	s := scalarToken(NewScalar([]byte("x"), Windows1252))
	if s.Kind != KindScalar || s.Scalar.String() != "x" {
		t.Fatalf("scalarToken mismatch: %+v", s)
	}

	a := arrayToken(5)
	if a.Kind != KindArray || a.End != 5 {
		t.Fatalf("arrayToken mismatch: %+v", a)
	}

	o := objectToken(7)
	if o.Kind != KindObject || o.End != 7 {
		t.Fatalf("objectToken mismatch: %+v", o)
	}

	e := endToken(2)
	if e.Kind != KindEnd || e.Start != 2 {
		t.Fatalf("endToken mismatch: %+v", e)
	}

	r := rgbToken(Rgb{R: 1, G: 2, B: 3})
	if r.Kind != KindRgb || r.Rgb != (Rgb{R: 1, G: 2, B: 3}) {
		t.Fatalf("rgbToken mismatch: %+v", r)
	}
}
