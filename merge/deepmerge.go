// Package merge contains the operations that fill a partial record from layers of defaults.
package merge

import (
	"reflect"

	"github.com/lyraproj/unpartial/api"
)

// Deep returns a new record where the properties of partial are merged into those of base.
//
// When both values of a property are records, Deep merges them recursively. An array is replaced by
// an array, and any other defined value is appended to a copy of it. All other values are overridden
// by the value from partial unless that value is absent. A present nil value is a value and will
// override, except for a record which is kept when partial has a value that is not a record. Deep
// returns nil when base is nil and a deep copy of base when partial is nil.
//
// Maps and slices in the result are never shared with base or partial. Structs and pointers are
// taken as is.
func Deep(base, partial api.Record) api.Record {
	return fold(filterEntries(base, partial), deepRecord)
}

// Deep3 is like Deep but with an additional superBase that has the lowest precedence. The result is
// nil when superBase is nil. A nil base or partial is ignored.
func Deep3(superBase, base, partial api.Record) api.Record {
	return fold(filterEntries(superBase, base, partial), deepRecord)
}

// DeepValue merges the value b into the value a using the same rules as Deep and returns the result.
func DeepValue(a, b interface{}) interface{} {
	return deep(a, b, true)
}

func deepRecord(memo, entry api.Record) api.Record {
	return deep(memo, entry, true).(api.Record)
}

// deep merges b into a. The bDefined flag is false when b is absent, which is different from b being
// present with a nil value.
func deep(a, b interface{}, bDefined bool) interface{} {
	if isArray(a) {
		if !bDefined {
			return clone(a)
		}
		if isArray(b) {
			return clone(b)
		}
		return appendValue(clone(a), clone(b))
	}

	ar, ok := recordOf(a)
	if !ok {
		if bDefined {
			return clone(b)
		}
		return clone(a)
	}

	var br api.Record
	if bDefined {
		// a value that is not a record contributes no keys
		br, _ = recordOf(b)
	}

	r := make(api.Record, len(ar)+len(br))
	for k, av := range ar {
		bv, found := br[k]
		r[k] = deep(av, bv, found)
	}
	for k, bv := range br {
		if _, found := ar[k]; !found {
			r[k] = clone(bv)
		}
	}
	return r
}

func isArray(v interface{}) bool {
	switch v.(type) {
	case nil, []byte:
		return false
	case []interface{}:
		return true
	}
	return reflect.ValueOf(v).Kind() == reflect.Slice
}

// appendValue returns a copy of the slice a with v appended. The copy has the type of a when v is
// assignable to its element type and is a []interface{} otherwise.
func appendValue(a, v interface{}) interface{} {
	av := reflect.ValueOf(a)
	n := av.Len()
	if v != nil {
		vv := reflect.ValueOf(v)
		if vv.Type().AssignableTo(av.Type().Elem()) {
			c := reflect.MakeSlice(av.Type(), n, n+1)
			reflect.Copy(c, av)
			return reflect.Append(c, vv).Interface()
		}
	}
	c := make([]interface{}, n, n+1)
	for i := 0; i < n; i++ {
		c[i] = av.Index(i).Interface()
	}
	return append(c, v)
}

// clone returns a copy of all maps and slices reachable from v through maps and slices. Other values,
// including structs and pointers, are returned as is.
func clone(v interface{}) interface{} {
	switch v := v.(type) {
	case nil:
		return nil
	case map[string]interface{}:
		if v == nil {
			return v
		}
		r := make(api.Record, len(v))
		for k, e := range v {
			r[k] = clone(e)
		}
		return r
	case []interface{}:
		if v == nil {
			return v
		}
		r := make([]interface{}, len(v))
		for i, e := range v {
			r[i] = clone(e)
		}
		return r
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if !rv.IsNil() {
			c := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
			for i := 0; i < rv.Len(); i++ {
				c.Index(i).Set(cloneElem(rv.Index(i)))
			}
			return c.Interface()
		}
	case reflect.Map:
		if !rv.IsNil() {
			c := reflect.MakeMapWithSize(rv.Type(), rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				c.SetMapIndex(iter.Key(), cloneElem(iter.Value()))
			}
			return c.Interface()
		}
	}
	return v
}

func cloneElem(e reflect.Value) reflect.Value {
	c := clone(e.Interface())
	if c == nil {
		return e
	}
	return reflect.ValueOf(c)
}
