package geometry

// derived holds a lazily computed quantity behind a validity flag.
// The flag is cleared by the metric mutation path and set again only
// through set, the single recompute entry point.
type derived[T any] struct {
	value T
	valid bool
}

func (d *derived[T]) set(v T) T {
	d.value = v
	d.valid = true
	return v
}

func (d *derived[T]) invalidate() {
	d.valid = false
}
