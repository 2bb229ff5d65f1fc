package api

// FillStrategy is responsible for filling the missing properties of a partial record from one or two
// layers of defaults.
type FillStrategy interface {
	// Label returns a short descriptive label of this strategy.
	Label() string

	// Name returns the name of this strategy
	Name() string

	// Fill returns a new record containing the properties of base overridden by those of partial. The
	// result is nil when base is nil.
	Fill(base, partial Record) Record

	// Fill3 returns a new record containing the properties of superBase overridden by those of base
	// which in turn are overridden by those of partial. The result is nil when superBase is nil.
	Fill3(superBase, base, partial Record) Record
}
