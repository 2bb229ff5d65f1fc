package merge

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/mohae/deepcopy"
)

// Struct returns a T where the zero valued fields of partial are filled in from base. T must be a
// struct or a map type.
//
// Unlike Shallow and Deep, a zero value is treated as absent, so a field of partial that holds its
// zero value never overrides base. Use pointer fields for values where the zero value is meaningful;
// a non nil pointer in partial is kept as is.
// Nested structs and maps are filled recursively and a non empty slice in partial replaces the one
// in base. Neither base nor partial is modified.
func Struct[T any](base, partial T) (T, error) {
	return fillStruct(partial, base)
}

// Struct3 is like Struct but with an additional superBase that has the lowest precedence.
func Struct3[T any](superBase, base, partial T) (T, error) {
	return fillStruct(partial, base, superBase)
}

// fillStruct fills the layers, given from most to least specific, into a copy of the first one.
func fillStruct[T any](layers ...T) (T, error) {
	result, _ := deepcopy.Copy(layers[0]).(T)
	for _, l := range layers[1:] {
		c, _ := deepcopy.Copy(l).(T)
		if err := mergo.Merge(&result, c, mergo.WithoutDereference); err != nil {
			return result, fmt.Errorf(`unable to fill %T: %w`, result, err)
		}
	}
	return result, nil
}
