// Package cli contains the cobra command of the unpartial command line tool.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/unpartial/api"
	"github.com/lyraproj/unpartial/merge"
	"github.com/lyraproj/unpartial/unpartial"
	"github.com/spf13/cobra"
)

var helpTemplate = `Description:
  {{rpad .Long 10}}

Usage:{{if .Runnable}}{{if .HasAvailableFlags}}
  {{appendIfNotPresent .UseLine "[flags]"}}{{else}}{{.UseLine}}{{end}}{{end}}{{if .HasExample }}

Examples:
  {{ .Example }}{{end}}{{ if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimRightSpace}}{{end}}
`

var (
	cmdOpts  unpartial.CommandOptions
	logLevel string
)

// NewCommand creates the unpartial Command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unpartial [<partial>]",
		Short: `Unpartial - Fill a partial record from layers of defaults`,
		Long: `Unpartial - Fill the missing properties of a partial record from layers of defaults.
    The partial record is read from the given YAML or JSON file, or from stdin when the file is "-".`,
		Example: `  unpartial --base defaults.yaml --merge deep overrides.yaml
  unpartial --super 'defaults/**/*.yaml' --base site.json --render-as json -`,
		Version: fmt.Sprintf("%v", getVersion()),
		PreRun:  initialize,
		RunE:    cmdFill,
		Args:    cobra.MaximumNArgs(1)}

	flags := cmd.Flags()
	flags.StringVar(&logLevel, `loglevel`, `error`,
		`error/warn/info/debug/trace`)
	flags.StringVar(&cmdOpts.Merge, `merge`, api.DefaultStrategy,
		strings.Join(merge.Strategies(), `/`))
	flags.StringVar(&cmdOpts.Base, `base`, ``,
		`path or glob pattern of the YAML or JSON files that contain the defaults`)
	flags.StringVar(&cmdOpts.SuperBase, `super`, ``,
		`path or glob pattern of the YAML or JSON files that contain defaults with lower precedence than --base`)
	flags.StringVar(&cmdOpts.RenderAs, `render-as`, `yaml`,
		`s/json/yaml: Specify the output format of the result; s means plain text`)
	_ = cmd.MarkFlagRequired(`base`)

	cmd.SetHelpTemplate(helpTemplate)
	return cmd
}

func initialize(_ *cobra.Command, _ []string) {
	hclog.DefaultOptions = &hclog.LoggerOptions{
		Name:   `unpartial`,
		Level:  hclog.LevelFromString(logLevel),
		Output: os.Stderr,
	}
}

func cmdFill(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	opts := cmdOpts
	if len(args) > 0 {
		opts.Partial = args[0]
	}
	return unpartial.FillAndRender(&opts, cmd.InOrStdin(), cmd.OutOrStdout())
}
