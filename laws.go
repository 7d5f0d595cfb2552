package arith

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"
)

// Law names an algebraic property of a binary operation.
type Law string

const (
	Commutative Law = "Commutative" // op(a, b) == op(b, a)
	Associative Law = "Associative" // op(op(a, b), c) == op(a, op(b, c))
	Identity    Law = "Identity"    // op(a, zero) == a == op(zero, a)
)

// Operation names used in the registry.
const (
	OpAddInts    = "arith.AddInts"
	OpAddFloats  = "arith.AddFloats"
	OpComplexAdd = "arith.Complex.Add"
)

// ErrNotVerified is returned by Require for operations missing from the registry.
var ErrNotVerified = errors.New("operation not verified")

// LawVerified is the proof that an operation passed its law checks.
type LawVerified struct {
	Operation  string            // Registry key, e.g. OpComplexAdd
	Laws       []Law             // Which laws passed
	VerifiedAt time.Time         // When the checks ran
	Samples    int               // Number of sample values exercised
	Properties map[string]string // Additional metadata
}

// Has reports whether the proof covers law.
func (v LawVerified) Has(law Law) bool {
	for _, l := range v.Laws {
		if l == law {
			return true
		}
	}
	return false
}

// LawViolation describes the first counterexample a check found.
type LawViolation struct {
	Law      Law
	Operands []string
	Left     string // Value of the left-hand side of the law
	Right    string // Value of the right-hand side of the law
}

func (v *LawViolation) Error() string {
	return fmt.Sprintf("%s law violated for %v: %s != %s", v.Law, v.Operands, v.Left, v.Right)
}

// CheckCommutative verifies op(a, b) == op(b, a) for every pair of samples.
func CheckCommutative[T any](op func(a, b T) T, eq func(a, b T) bool, samples []T) error {
	for _, a := range samples {
		for _, b := range samples {
			ab, ba := op(a, b), op(b, a)
			if !eq(ab, ba) {
				return &LawViolation{
					Law:      Commutative,
					Operands: operands(a, b),
					Left:     fmt.Sprint(ab),
					Right:    fmt.Sprint(ba),
				}
			}
		}
	}
	return nil
}

// CheckAssociative verifies op(op(a, b), c) == op(a, op(b, c)) for every
// triple of samples.
func CheckAssociative[T any](op func(a, b T) T, eq func(a, b T) bool, samples []T) error {
	for _, a := range samples {
		for _, b := range samples {
			for _, c := range samples {
				left, right := op(op(a, b), c), op(a, op(b, c))
				if !eq(left, right) {
					return &LawViolation{
						Law:      Associative,
						Operands: operands(a, b, c),
						Left:     fmt.Sprint(left),
						Right:    fmt.Sprint(right),
					}
				}
			}
		}
	}
	return nil
}

// CheckIdentity verifies zero is a two-sided identity of op over samples.
func CheckIdentity[T any](op func(a, b T) T, eq func(a, b T) bool, zero T, samples []T) error {
	for _, a := range samples {
		for _, got := range []T{op(a, zero), op(zero, a)} {
			if !eq(got, a) {
				return &LawViolation{
					Law:      Identity,
					Operands: operands(a, zero),
					Left:     fmt.Sprint(got),
					Right:    fmt.Sprint(a),
				}
			}
		}
	}
	return nil
}

func operands[T any](vals ...T) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = fmt.Sprint(v)
	}
	return out
}

// LawConfig holds the sample values the Verify functions exercise.
type LawConfig struct {
	IntSamples     []int32
	FloatSamples   []float32
	ComplexSamples []Complex
}

// DefaultLawConfig returns samples covering zero, signs, fractions and the
// int32 wrap-around boundary.
func DefaultLawConfig() LawConfig {
	return LawConfig{
		IntSamples: []int32{0, 1, -1, 3, 4, 42, math.MaxInt32, math.MinInt32},
		FloatSamples: []float32{
			0, 1, -1, 3.5, 4.5, 1.6, 0.1, -2.25, math.MaxFloat32,
		},
		ComplexSamples: []Complex{
			{},
			NewComplex(3.5, 2.5),
			NewComplex(1.6, 3.7),
			NewComplex(-1, 2),
			FromReal(0.1),
			NewComplex(0, -7.75),
		},
	}
}

// VerifyIntAdd checks AddInts against all three laws.
func VerifyIntAdd(cfg LawConfig) (LawVerified, error) {
	eq := func(a, b int32) bool { return a == b }

	if err := CheckCommutative(AddInts, eq, cfg.IntSamples); err != nil {
		return LawVerified{}, fmt.Errorf("%s: %w", OpAddInts, err)
	}
	if err := CheckAssociative(AddInts, eq, cfg.IntSamples); err != nil {
		return LawVerified{}, fmt.Errorf("%s: %w", OpAddInts, err)
	}
	if err := CheckIdentity(AddInts, eq, 0, cfg.IntSamples); err != nil {
		return LawVerified{}, fmt.Errorf("%s: %w", OpAddInts, err)
	}

	return LawVerified{
		Operation:  OpAddInts,
		Laws:       []Law{Commutative, Associative, Identity},
		VerifiedAt: time.Now(),
		Samples:    len(cfg.IntSamples),
		Properties: map[string]string{"overflow": "wrap"},
	}, nil
}

// VerifyFloatAdd checks AddFloats for commutativity and identity.
func VerifyFloatAdd(cfg LawConfig) (LawVerified, error) {
	eq := func(a, b float32) bool { return a == b }

	if err := CheckCommutative(AddFloats, eq, cfg.FloatSamples); err != nil {
		return LawVerified{}, fmt.Errorf("%s: %w", OpAddFloats, err)
	}
	if err := CheckIdentity(AddFloats, eq, 0, cfg.FloatSamples); err != nil {
		return LawVerified{}, fmt.Errorf("%s: %w", OpAddFloats, err)
	}

	return LawVerified{
		Operation:  OpAddFloats,
		Laws:       []Law{Commutative, Identity},
		VerifiedAt: time.Now(),
		Samples:    len(cfg.FloatSamples),
		Properties: map[string]string{"precision": "float32"},
	}, nil
}

// VerifyComplexAdd checks Complex.Add for commutativity and identity.
func VerifyComplexAdd(cfg LawConfig) (LawVerified, error) {
	if err := CheckCommutative(Complex.Add, Complex.Equal, cfg.ComplexSamples); err != nil {
		return LawVerified{}, fmt.Errorf("%s: %w", OpComplexAdd, err)
	}
	if err := CheckIdentity(Complex.Add, Complex.Equal, Complex{}, cfg.ComplexSamples); err != nil {
		return LawVerified{}, fmt.Errorf("%s: %w", OpComplexAdd, err)
	}

	return LawVerified{
		Operation:  OpComplexAdd,
		Laws:       []Law{Commutative, Identity},
		VerifiedAt: time.Now(),
		Samples:    len(cfg.ComplexSamples),
		Properties: map[string]string{"precision": "float32"},
	}, nil
}

// LawRegistry records which operations have passed which laws.
type LawRegistry struct {
	mu       sync.RWMutex
	verified map[string]LawVerified
}

// NewLawRegistry creates an empty registry.
func NewLawRegistry() *LawRegistry {
	return &LawRegistry{
		verified: make(map[string]LawVerified),
	}
}

// Register adds or replaces the proof for v.Operation.
func (r *LawRegistry) Register(v LawVerified) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.verified[v.Operation] = v
}

// IsVerified returns the proof recorded for op.
func (r *LawRegistry) IsVerified(op string) (LawVerified, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.verified[op]
	return v, ok
}

// Require returns an error unless op is registered with every law in laws.
func (r *LawRegistry) Require(op string, laws ...Law) error {
	v, ok := r.IsVerified(op)
	if !ok {
		return fmt.Errorf("%s: %w", op, ErrNotVerified)
	}

	for _, law := range laws {
		if !v.Has(law) {
			return fmt.Errorf("%s missing required law: %s (has: %v)", op, law, v.Laws)
		}
	}

	return nil
}

// Global registry (optional convenience)
var globalRegistry = NewLawRegistry()

// Register adds to the global registry.
func Register(v LawVerified) {
	globalRegistry.Register(v)
}

// Require checks against the global registry.
func Require(op string, laws ...Law) error {
	return globalRegistry.Require(op, laws...)
}
