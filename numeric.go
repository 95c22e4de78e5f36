package descriptive

import "math"

// Number is the set of built-in numeric types an accumulator can observe:
// anything that supports addition, ordering and division by a count, and
// for which a minimum representable value exists to seed max-tracking.
//
// The union is over concrete types on purpose: minimum resolves the
// sentinel with a type switch, which must cover every member exactly.
type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// minimum returns the smallest representable value of T, used as the
// "no observations yet" sentinel for the running maximum.
func minimum[T Number]() T {
	var v T
	switch p := any(&v).(type) {
	case *int:
		*p = math.MinInt
	case *int8:
		*p = math.MinInt8
	case *int16:
		*p = math.MinInt16
	case *int32:
		*p = math.MinInt32
	case *int64:
		*p = math.MinInt64
	case *uint, *uint8, *uint16, *uint32, *uint64:
		// zero value is already the minimum
	case *float32:
		*p = -math.MaxFloat32
	case *float64:
		*p = -math.MaxFloat64
	}
	return v
}
