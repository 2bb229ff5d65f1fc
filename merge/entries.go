package merge

import "github.com/lyraproj/unpartial/api"

// filterEntries returns the non nil candidates in the order given. It returns nil when the first,
// most specific, candidate is nil since there is nothing to fill in that case.
func filterEntries(candidates ...api.Record) []api.Record {
	if candidates[0] == nil {
		return nil
	}
	entries := make([]api.Record, 0, len(candidates))
	for _, c := range candidates {
		if c != nil {
			entries = append(entries, c)
		}
	}
	return entries
}

// fold applies the reducer to each entry with a memo that starts out as a new empty record. The
// result is nil when entries is nil.
func fold(entries []api.Record, reducer func(memo, entry api.Record) api.Record) api.Record {
	if entries == nil {
		return nil
	}
	memo := make(api.Record)
	for _, e := range entries {
		memo = reducer(memo, e)
	}
	return memo
}
