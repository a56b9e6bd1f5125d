package tracker

// Choice is a filter selector that is either unfiltered or pinned to one value.
// The zero value is unfiltered.
type Choice[T comparable] struct {
	value T
	set   bool
}

func Any[T comparable]() Choice[T] {
	return Choice[T]{}
}

func Exactly[T comparable](v T) Choice[T] {
	return Choice[T]{value: v, set: true}
}

// Value reports the pinned value, if any.
func (c Choice[T]) Value() (T, bool) {
	return c.value, c.set
}

func (c Choice[T]) Matches(v T) bool {
	return !c.set || c.value == v
}
