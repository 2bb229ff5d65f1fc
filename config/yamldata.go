package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lyraproj/unpartial/api"
	"gopkg.in/yaml.v3"
)

// Decode parses data as a YAML or JSON document and returns it as a record. The origin is used in
// error messages and decides which error is returned when the document is not a mapping. Empty and
// null documents yield a nil record.
func Decode(data []byte, origin string) (api.Record, error) {
	var v interface{}
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf(`unable to parse '%s': %w`, origin, err)
	}
	switch v := Normalize(v).(type) {
	case nil:
		return nil, nil
	case map[string]interface{}:
		return v, nil
	}
	if strings.EqualFold(filepath.Ext(origin), `.json`) {
		return nil, api.JSONNotHash(origin)
	}
	return nil, api.YamlNotHash(origin)
}

// Load reads the YAML or JSON file at path and returns its contents as a record. A file that does
// not exist yields a nil record.
func Load(path string) (api.Record, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return Decode(bs, path)
}

// Normalize converts all maps reachable from x through maps and slices into records. Keys that
// are not strings are formatted using fmt.
func Normalize(x interface{}) interface{} {
	switch x := x.(type) {
	case map[interface{}]interface{}:
		m := make(api.Record, len(x))
		for k, v := range x {
			if s, ok := k.(string); ok {
				m[s] = Normalize(v)
			} else {
				m[fmt.Sprint(k)] = Normalize(v)
			}
		}
		return m
	case map[string]interface{}:
		for k, v := range x {
			x[k] = Normalize(v)
		}
	case []interface{}:
		for i, v := range x {
			x[i] = Normalize(v)
		}
	}
	return x
}
