package merge

import (
	"reflect"
	"strings"

	"github.com/lyraproj/unpartial/api"
)

const structJSONAnnotation = `json`

// recordOf returns the record view of v and true when v is record-like. Record-like values are
// maps with string keys, and structs or non nil pointers to structs that have at least one exported
// field.
//
// The keys of a struct are its exported fields, named by their json annotation when present. Fields
// that are promoted from embedded structs are included, but the embedded field itself is not. A
// field declared on the outer struct shadows a promoted field with the same name.
func recordOf(v interface{}) (api.Record, bool) {
	switch v := v.(type) {
	case nil:
		return nil, false
	case map[string]interface{}:
		return v, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		r := make(api.Record, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			r[iter.Key().String()] = iter.Value().Interface()
		}
		return r, true
	case reflect.Ptr:
		if rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return nil, false
		}
		rv = rv.Elem()
	case reflect.Struct:
	default:
		return nil, false
	}

	r := make(api.Record)
	structFields(rv, r)
	if len(r) == 0 {
		return nil, false
	}
	return r, true
}

func structFields(rv reflect.Value, r api.Record) {
	t := rv.Type()
	var embedded []reflect.Value
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		fv := rv.Field(i)
		tag := f.Tag.Get(structJSONAnnotation)
		if f.Anonymous && tag == `` {
			ev := fv
			if ev.Kind() == reflect.Ptr && !ev.IsNil() {
				ev = ev.Elem()
			}
			if ev.Kind() == reflect.Struct {
				embedded = append(embedded, ev)
				continue
			}
			if ev.Kind() == reflect.Ptr && ev.Type().Elem().Kind() == reflect.Struct {
				continue
			}
		}
		if f.PkgPath != `` {
			continue
		}
		name := fieldName(f.Name, tag)
		if name == `-` {
			continue
		}
		r[name] = fv.Interface()
	}

	for _, ev := range embedded {
		er := make(api.Record)
		structFields(ev, er)
		for k, v := range er {
			if _, found := r[k]; !found {
				r[k] = v
			}
		}
	}
}

func fieldName(name, tag string) string {
	if tag == `` {
		return name
	}
	if n := strings.Split(tag, `,`)[0]; n != `` {
		return n
	}
	return name
}
