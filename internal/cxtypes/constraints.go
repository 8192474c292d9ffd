package cxtypes

// Signed permits any signed integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer permits any integer type.
type Integer interface {
	Signed | Unsigned
}

// Float permits any floating-point type.
type Float interface {
	~float32 | ~float64
}

// Number is the component constraint for Complex.
// Every type in the set supports +, - and * returning the same type,
// has a zero value and is copied by value.
type Number interface {
	Integer | Float
}
