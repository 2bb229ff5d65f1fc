package merge

import "github.com/lyraproj/unpartial/api"

// Shallow returns a new record with the properties of base overridden by the properties of partial.
//
// A property that is present in partial always wins, even when its value is nil, false, zero or an
// empty string. Values are not merged, so a nested record in partial replaces the one in base
// entirely. Shallow returns nil when base is nil and a copy of base when partial is nil.
func Shallow(base, partial api.Record) api.Record {
	return fold(filterEntries(base, partial), assign)
}

// Shallow3 is like Shallow but with an additional superBase that has the lowest precedence. The
// result is nil when superBase is nil. A nil base or partial is ignored.
func Shallow3(superBase, base, partial api.Record) api.Record {
	return fold(filterEntries(superBase, base, partial), assign)
}

func assign(memo, entry api.Record) api.Record {
	for k, v := range entry {
		memo[k] = v
	}
	return memo
}
