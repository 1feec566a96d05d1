package pointer

// Deref returns the value of the given pointer,
// or def if the pointer is nil.
func Deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}

	return *p
}

func IntDeref(p *int, def int) int {
	return Deref(p, def)
}

func StringDeref(p *string, def string) string {
	return Deref(p, def)
}
