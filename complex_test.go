package arith

import (
	"bytes"
	"errors"
	"testing"
)

func TestComplex_ZeroValue(t *testing.T) {
	var c Complex

	if c.Real() != 0 || c.Imag() != 0 {
		t.Errorf("Zero value should be 0 + 0i, got %s", c)
	}

	if !c.Equal(NewComplex(0, 0)) {
		t.Errorf("Complex{} should equal NewComplex(0, 0)")
	}
}

func TestComplex_FromReal(t *testing.T) {
	c := FromReal(2.5)

	if c.Real() != 2.5 || c.Imag() != 0 {
		t.Errorf("FromReal(2.5) = %s, want 2.5 + 0i", c)
	}
}

func TestComplex_Add(t *testing.T) {
	c1 := NewComplex(3.5, 2.5)
	c2 := NewComplex(1.6, 3.7)

	sum := c1.Add(c2)

	AssertComplexNear(t, sum, 5.1, 6.2, 1e-6)

	if got := sum.String(); got != "5.1 + 6.2i" {
		t.Errorf("String() = %q, want %q", got, "5.1 + 6.2i")
	}

	t.Logf("✓ %s + %s = %s", c1, c2, sum)
}

func TestComplex_AddDoesNotMutate(t *testing.T) {
	c1 := NewComplex(3.5, 2.5)
	c2 := NewComplex(1.6, 3.7)

	_ = c1.Add(c2)

	if !c1.Equal(NewComplex(3.5, 2.5)) {
		t.Errorf("Receiver mutated: %s", c1)
	}
	if !c2.Equal(NewComplex(1.6, 3.7)) {
		t.Errorf("Operand mutated: %s", c2)
	}
}

func TestComplex_AddComponents(t *testing.T) {
	pairs := [][4]float32{
		{0, 0, 0, 0},
		{1, -1, -1, 1},
		{0.5, 0.25, 0.125, 4},
		{-3, 7.5, 10, -2.5},
	}

	for _, p := range pairs {
		got := NewComplex(p[0], p[1]).Add(NewComplex(p[2], p[3]))
		if got.Real() != p[0]+p[2] || got.Imag() != p[1]+p[3] {
			t.Errorf("(%v + %vi) + (%v + %vi) = %s", p[0], p[1], p[2], p[3], got)
		}
	}
}

func TestComplex_Laws(t *testing.T) {
	cfg := DefaultLawConfig()

	AssertCommutative(t, Complex.Add, Complex.Equal, cfg.ComplexSamples)
	AssertIdentity(t, Complex.Add, Complex.Equal, Complex{}, cfg.ComplexSamples)
}

func TestComplex_String(t *testing.T) {
	cases := map[string]Complex{
		"3.5 + 2.5i": NewComplex(3.5, 2.5),
		"0 + 0i":     {},
		"8 + 0i":     FromReal(8),
		"1 + -2i":    NewComplex(1, -2),
		"-0.1 + 1i":  NewComplex(-0.1, 1),
	}

	for want, c := range cases {
		if got := c.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestComplex_Display(t *testing.T) {
	var buf bytes.Buffer

	if err := NewComplex(1.6, 3.7).Display(&buf); err != nil {
		t.Fatalf("Display failed: %v", err)
	}

	if got := buf.String(); got != "1.6 + 3.7i\n" {
		t.Errorf("Display wrote %q, want %q", got, "1.6 + 3.7i\n")
	}
}

type failingWriter struct{}

var errClosed = errors.New("stream closed")

func (failingWriter) Write([]byte) (int, error) { return 0, errClosed }

func TestComplex_DisplayError(t *testing.T) {
	err := NewComplex(1, 1).Display(failingWriter{})
	if !errors.Is(err, errClosed) {
		t.Fatalf("Expected wrapped errClosed, got %v", err)
	}

	t.Logf("✓ Write error surfaced: %v", err)
}
