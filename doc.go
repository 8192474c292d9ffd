// Package algocomplex provides a generic complex number type whose real and
// imaginary parts are any Go integer or floating-point type.
//
// Complex[T] is a small value type. Every operation takes its operands by
// value and returns a new Complex, so values can be copied and shared freely.
// Arithmetic follows T's own semantics: integer overflow wraps and float
// overflow produces infinities, both without any intervention here.
//
//	z := algocomplex.New(2, -2)
//	w := algocomplex.New(9, 17)
//	fmt.Println(z.Mul(w)) // 52+16i
package algocomplex
