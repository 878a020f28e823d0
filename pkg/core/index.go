package core

// Index is a position in the displayed person list. It is stored zero-based
// and rendered one-based to the user.
type Index struct {
	zeroBased int
}

// IndexFromOneBased converts a user-facing index. n must be positive.
func IndexFromOneBased(n int) Index { return Index{zeroBased: n - 1} }

// IndexFromZeroBased wraps an internal slice position. n must be >= 0.
func IndexFromZeroBased(n int) Index { return Index{zeroBased: n} }

func (i Index) ZeroBased() int { return i.zeroBased }
func (i Index) OneBased() int { return i.zeroBased + 1 }
