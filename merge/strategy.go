package merge

import (
	"github.com/lyraproj/unpartial/api"
)

type (
	deepFill struct{}

	shallowFill struct{}
)

// GetStrategy returns the api.FillStrategy that corresponds to the given name. An empty name
// yields the default strategy. GetStrategy panics with an error when the name is unknown.
func GetStrategy(n string) api.FillStrategy {
	switch n {
	case ``, `shallow`:
		return &shallowFill{}
	case `deep`:
		return &deepFill{}
	default:
		panic(api.UnknownFillStrategy(n))
	}
}

// Strategies returns the names of all known strategies.
func Strategies() []string {
	return []string{`shallow`, `deep`}
}

func (d *shallowFill) Name() string {
	return `shallow`
}

func (d *shallowFill) Label() string {
	return `shallow fill strategy`
}

func (d *shallowFill) Fill(base, partial api.Record) api.Record {
	return Shallow(base, partial)
}

func (d *shallowFill) Fill3(superBase, base, partial api.Record) api.Record {
	return Shallow3(superBase, base, partial)
}

func (d *deepFill) Name() string {
	return `deep`
}

func (d *deepFill) Label() string {
	return `deep fill strategy`
}

func (d *deepFill) Fill(base, partial api.Record) api.Record {
	return Deep(base, partial)
}

func (d *deepFill) Fill3(superBase, base, partial api.Record) api.Record {
	return Deep3(superBase, base, partial)
}
