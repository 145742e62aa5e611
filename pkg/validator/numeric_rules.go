package validator

func AtLeast[T Numeric](value, min T) Check {
	return func() bool {
		return value >= min
	}
}

func AtMost[T Numeric](value, max T) Check {
	return func() bool {
		return value <= max
	}
}

// Between holds for min <= value <= max.
func Between[T Numeric](value, min, max T) Check {
	return func() bool {
		return value >= min && value <= max
	}
}

// Bounds describes an inclusive legal range plus a threshold above which a
// legal value is reported as unusual.
type Bounds[T Numeric] struct {
	Min      T
	Max      T
	WarnOver T
}

func (b Bounds[T]) Contains(v T) bool {
	return v >= b.Min && v <= b.Max
}

// Unusual reports whether v is legal but above the warning threshold.
func (b Bounds[T]) Unusual(v T) bool {
	return b.Contains(v) && v > b.WarnOver
}
