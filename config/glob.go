package config

import (
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/unpartial/api"
	"github.com/lyraproj/unpartial/merge"
	"github.com/lyraproj/unpartial/util"
)

const globMeta = `*?[{`

// IsGlob returns true if the layer spec contains glob meta characters.
func IsGlob(spec string) bool {
	return strings.ContainsAny(spec, globMeta)
}

// LoadLayer loads the layer described by spec. A spec that contains glob meta characters is
// expanded and the matching files are deep filled in lexical order, so that a file sorting later
// takes precedence. Any other spec is the path of a single file. An empty spec yields a nil record.
func LoadLayer(spec string, logger hclog.Logger) (api.Record, error) {
	if spec == `` {
		return nil, nil
	}
	if logger == nil {
		logger = hclog.Default()
	}
	if !IsGlob(spec) {
		logger.Debug(`loading layer`, `path`, spec)
		return Load(spec)
	}

	paths, err := util.Glob(``, spec)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		logger.Debug(`no files matched layer glob`, `pattern`, spec)
		return nil, nil
	}

	var layer api.Record
	for _, path := range paths {
		r, err := Load(path)
		if err != nil {
			return nil, err
		}
		logger.Trace(`merging layer file`, `pattern`, spec, `path`, path)
		if layer == nil {
			layer = r
		} else {
			layer = merge.Deep(layer, r)
		}
	}
	return layer, nil
}
