package arith

import (
	"fmt"
	"io"
	"strconv"
)

// Complex is an immutable complex number with single-precision components.
//
// The zero value is 0 + 0i. Every operation returns a new value; none mutates
// its receiver or operands.
type Complex struct {
	real float32
	imag float32
}

// NewComplex returns r + ii.
func NewComplex(r, i float32) Complex {
	return Complex{real: r, imag: i}
}

// FromReal returns r + 0i.
func FromReal(r float32) Complex {
	return Complex{real: r}
}

// Real returns the real component.
func (c Complex) Real() float32 { return c.real }

// Imag returns the imaginary component.
func (c Complex) Imag() float32 { return c.imag }

// Add returns the component-wise sum c + o.
func (c Complex) Add(o Complex) Complex {
	return Complex{
		real: AddFloats(c.real, o.real),
		imag: AddFloats(c.imag, o.imag),
	}
}

// Equal reports whether both components are exactly equal.
func (c Complex) Equal(o Complex) bool {
	return c.real == o.real && c.imag == o.imag
}

// String renders c as "<real> + <imag>i" using the shortest representation of
// each component. A negative imaginary part keeps its sign: "1 + -2i".
func (c Complex) String() string {
	return formatFloat(c.real) + " + " + formatFloat(c.imag) + "i"
}

// Display writes c followed by a newline to w.
func (c Complex) Display(w io.Writer) error {
	if _, err := io.WriteString(w, c.String()+"\n"); err != nil {
		return fmt.Errorf("display %s: %w", c, err)
	}
	return nil
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
