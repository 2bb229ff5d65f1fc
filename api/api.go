// Package api contains the types and interfaces that are shared throughout the unpartial code base
package api

// Record is a mapping from property names to values. The values are scalars, slices or nested
// records. A nil Record is the nullish record; operations that receive one as their most specific
// candidate return nil instead of failing.
//
// Record is an alias so that maps produced by the YAML and JSON decoders can be used without
// conversion.
type Record = map[string]interface{}

// DefaultStrategy is the name of the strategy used when no strategy name is given.
const DefaultStrategy = `shallow`
