// Package config loads the layers of records that are filled by the unpartial commands.
package config

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/unpartial/api"
)

// Stdin is the layer spec that denotes the Layers.Stdin reader.
const Stdin = `-`

// Layers describes where the records of a fill are found. Each spec is either empty, Stdin, the path
// of a YAML or JSON file, or a glob pattern matching such files.
type Layers struct {
	// SuperBase is the layer with the lowest precedence
	SuperBase string

	// Base is the layer with the defaults
	Base string

	// Partial is the layer with the highest precedence
	Partial string

	// Stdin is read when a layer spec equals Stdin
	Stdin io.Reader
}

// Load loads all three layers.
func (l *Layers) Load(logger hclog.Logger) (superBase, base, partial api.Record, err error) {
	if superBase, err = l.load(`super base`, l.SuperBase, logger); err != nil {
		return
	}
	if base, err = l.load(`base`, l.Base, logger); err != nil {
		return
	}
	partial, err = l.load(`partial`, l.Partial, logger)
	return
}

func (l *Layers) load(name, spec string, logger hclog.Logger) (api.Record, error) {
	var (
		r   api.Record
		err error
	)
	if spec == Stdin {
		if l.Stdin == nil {
			return nil, api.MissingRequiredOption(`stdin`)
		}
		var bs []byte
		if bs, err = io.ReadAll(l.Stdin); err == nil {
			r, err = Decode(bs, `stdin`)
		}
	} else {
		r, err = LoadLayer(spec, logger)
	}
	if err != nil {
		return nil, fmt.Errorf(`unable to load %s layer: %w`, name, err)
	}
	return r, nil
}
