package algocomplex

import "github.com/cwbudde/algo-complex/internal/cxtypes"

// Number is a type constraint for the component types a Complex can hold.
// The canonical definition is in internal/cxtypes.
type Number = cxtypes.Number

// Integer is a type constraint for integer component types.
// The canonical definition is in internal/cxtypes.
type Integer = cxtypes.Integer

// Float is a type constraint for floating-point component types.
// The canonical definition is in internal/cxtypes.
type Float = cxtypes.Float
