package internal

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// Max32 returns the larger of two int32 values.
func Max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// Min32 returns the smaller of two int32 values.
func Min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
