// Package unpartial contains the functions to use when filling layered records from files, as
// done by the command line tool and the REST server.
package unpartial

import (
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/unpartial/api"
	"github.com/lyraproj/unpartial/config"
	"github.com/lyraproj/unpartial/merge"
)

// A CommandOptions contains the options given to the CLI fill command.
type CommandOptions struct {
	// Merge is the name of a fill strategy
	Merge string

	// SuperBase is an optional layer spec for the record with the lowest precedence
	SuperBase string

	// Base is the layer spec for the record with the defaults
	Base string

	// Partial is the layer spec for the partial record. The value "-" denotes stdin
	Partial string

	// RenderAs is the name of the desired rendering
	RenderAs string
}

// Strategy returns the fill strategy with the given name or an error if no such strategy exists.
func Strategy(name string) (s api.FillStrategy, err error) {
	defer func() {
		if r := recover(); r != nil {
			if er, ok := r.(error); ok {
				err = er
			} else {
				panic(r)
			}
		}
	}()
	return merge.GetStrategy(name), nil
}

// Fill fills partial using the given strategy. A nil superBase is treated as absent so that the
// result only depends on base and partial.
func Fill(strategy api.FillStrategy, superBase, base, partial api.Record) api.Record {
	if superBase == nil {
		return strategy.Fill(base, partial)
	}
	return strategy.Fill3(superBase, base, partial)
}

// FillAndRender loads the layers given in the options, fills them, and renders the result on out.
// The in reader is used when a layer is given as "-".
func FillAndRender(opts *CommandOptions, in io.Reader, out io.Writer) error {
	if opts.Base == `` {
		return api.MissingRequiredOption(`base`)
	}
	strategy, err := Strategy(opts.Merge)
	if err != nil {
		return err
	}

	logger := hclog.Default().Named(`fill`)
	layers := config.Layers{SuperBase: opts.SuperBase, Base: opts.Base, Partial: opts.Partial, Stdin: in}
	superBase, base, partial, err := layers.Load(logger)
	if err != nil {
		return err
	}

	result := Fill(strategy, superBase, base, partial)
	logger.Debug(`filled record`, `strategy`, strategy.Name(), `keys`, len(result))

	renderAs := RenderName(opts.RenderAs)
	if renderAs == `` {
		renderAs = YAML
	}
	var v interface{}
	if result != nil {
		v = result
	}
	return Render(renderAs, v, out)
}
