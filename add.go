package arith

// Number is the set of numeric types Add accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Add returns a + b in the arguments' own type.
//
// Integer sums wrap on overflow; float sums round to the argument precision.
func Add[T Number](a, b T) T {
	return a + b
}

// AddInts sums two 32-bit integers, wrapping on overflow.
func AddInts(a, b int32) int32 {
	return Add(a, b)
}

// AddFloats sums two single-precision floats.
func AddFloats(a, b float32) float32 {
	return Add(a, b)
}

// AddThreeInts sums three 32-bit integers, wrapping on overflow.
func AddThreeInts(a, b, c int32) int32 {
	return Add(Add(a, b), c)
}
