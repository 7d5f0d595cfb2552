// Package arith provides two small arithmetic exercises.
//
// # Overview
//
// The first exercise sums integers and floats through a family of addition
// functions that share one conceptual name. Go selects between them statically:
// either by name (AddInts, AddFloats, AddThreeInts) or by type inference on the
// generic Add.
//
//	fmt.Println(arith.AddInts(3, 4))         // 7
//	fmt.Println(arith.AddFloats(3.5, 4.5))   // 8
//	fmt.Println(arith.AddThreeInts(1, 2, 3)) // 6
//
// The second exercise is an immutable complex number with a component-wise
// addition:
//
//	c1 := arith.NewComplex(3.5, 2.5)
//	c2 := arith.NewComplex(1.6, 3.7)
//	c1.Add(c2).Display(os.Stdout) // 5.1 + 6.2i
//
// The zero value Complex{} is 0 + 0i.
//
// # Laws
//
// Both additions are commutative and have zero as identity. Integer addition is
// also associative; float addition is not (rounding), so it is never claimed.
//
//	proof, err := arith.VerifyComplexAdd(arith.DefaultLawConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	registry.Register(proof)
//
// # Testing
//
// Use assertions to check a binary operation in your own tests:
//
//	func TestMyAdd(t *testing.T) {
//	    arith.AssertCommutative(t, myAdd, eq, samples)
//	    arith.AssertIdentity(t, myAdd, eq, zero, samples)
//	}
//
// # Programs
//
//   - examples/overload - prints the three addition results
//   - examples/complex  - prints two complex numbers and their sum
package arith
