package algocomplex

import "fmt"

// Complex is the complex number re + im·i with components of type T.
// The zero value is 0+0i.
type Complex[T Number] struct {
	re T
	im T
}

// New returns re + im·i.
func New[T Number](re, im T) Complex[T] {
	return Complex[T]{re: re, im: im}
}

// Zero returns 0+0i, the additive identity.
func Zero[T Number]() Complex[T] {
	return Complex[T]{}
}

// Re returns the real part.
func (z Complex[T]) Re() T {
	return z.re
}

// Im returns the imaginary part.
func (z Complex[T]) Im() T {
	return z.im
}

// Parts returns the real and imaginary parts.
func (z Complex[T]) Parts() (re, im T) {
	return z.re, z.im
}

// Add returns z + w.
func (z Complex[T]) Add(w Complex[T]) Complex[T] {
	return Complex[T]{re: z.re + w.re, im: z.im + w.im}
}

// Sub returns z - w.
func (z Complex[T]) Sub(w Complex[T]) Complex[T] {
	return Complex[T]{re: z.re - w.re, im: z.im - w.im}
}

// Mul returns z * w.
func (z Complex[T]) Mul(w Complex[T]) Complex[T] {
	return Complex[T]{
		re: z.re*w.re - z.im*w.im,
		im: z.re*w.im + z.im*w.re,
	}
}

// Equal reports whether both components of z and w are equal under T's ==.
// There is no tolerance: for floats, NaN is never equal and -0 equals +0.
func (z Complex[T]) Equal(w Complex[T]) bool {
	return z.re == w.re && z.im == w.im
}

// NotEqual reports whether z and w differ in either component.
func (z Complex[T]) NotEqual(w Complex[T]) bool {
	return !z.Equal(w)
}

// String formats z as "<re>+<im>i" using the default format of T.
// Negative imaginary parts are not rewritten, so New(2, -1) prints "2+-1i".
func (z Complex[T]) String() string {
	return fmt.Sprintf("%v+%vi", z.re, z.im)
}

// GoString makes %#v print the same text as %v.
func (z Complex[T]) GoString() string {
	return z.String()
}

// Complex128 converts z to a builtin complex128.
func (z Complex[T]) Complex128() complex128 {
	return complex(float64(z.re), float64(z.im))
}

// Complex64 converts z to a builtin complex64.
func (z Complex[T]) Complex64() complex64 {
	return complex(float32(z.re), float32(z.im))
}

// FromComplex128 converts c to a Complex[T].
// For integer T the components are truncated toward zero.
func FromComplex128[T Number](c complex128) Complex[T] {
	return Complex[T]{re: T(real(c)), im: T(imag(c))}
}

// FromComplex64 converts c to a Complex[T].
// For integer T the components are truncated toward zero.
func FromComplex64[T Number](c complex64) Complex[T] {
	return Complex[T]{re: T(real(c)), im: T(imag(c))}
}
