package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/hashicorp/go-hclog"
	"github.com/labstack/echo"
	"github.com/lyraproj/unpartial/api"
	"github.com/lyraproj/unpartial/config"
	"github.com/lyraproj/unpartial/merge"
	"github.com/lyraproj/unpartial/unpartial"
	"github.com/spf13/cobra"
)

func main() {
	cmd := newCommand()
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

var (
	logLevel  string
	addr      string
	mergeName string
	layers    config.Layers
	port      int
)

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: `Server - Start an unpartial REST server`,
		Long: `Server - Start a REST server that fills partial records from layers of defaults.
  Responds to POST requests under the /fill endpoint`,
		PreRun: initialize,
		RunE:   startServer,
		Args:   cobra.NoArgs}

	flags := cmd.Flags()
	flags.StringVar(&logLevel, `loglevel`, `error`,
		`error/warn/info/debug/trace`)
	flags.StringVar(&layers.Base, `base`, ``,
		`path or glob pattern of the YAML or JSON files that contain the defaults`)
	flags.StringVar(&layers.SuperBase, `super`, ``,
		`path or glob pattern of the YAML or JSON files that contain defaults with lower precedence than --base`)
	flags.StringVar(&mergeName, `merge`, api.DefaultStrategy,
		`default fill strategy, one of `+fmt.Sprint(merge.Strategies()))
	flags.StringVar(&addr, `addr`, ``, `ip address to listen on`)
	flags.IntVar(&port, `port`, 8080, `port number to listen to`)
	_ = cmd.MarkFlagRequired(`base`)
	return cmd
}

func initialize(_ *cobra.Command, _ []string) {
	hclog.DefaultOptions = &hclog.LoggerOptions{
		Name:  `unpartial`,
		Level: hclog.LevelFromString(logLevel),
	}
}

func startServer(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true
	logger := hclog.Default().Named(`server`)
	superBase, base, _, err := layers.Load(logger)
	if err != nil {
		return err
	}
	if base == nil {
		return fmt.Errorf(`base layer '%s' is missing or empty`, layers.Base)
	}
	d, err := newDefaults(mergeName, superBase, base)
	if err != nil {
		return err
	}

	e := CreateRouter(d, logger)
	e.Logger.SetOutput(cmd.OutOrStdout())
	logger.Info(`starting server`, `addr`, addr, `port`, port, `merge`, d.strategy.Name())
	return e.Start(addr + ":" + strconv.Itoa(port))
}

// defaults are the layers that are loaded once when the server starts and then used to fill the
// partial record of each request.
type defaults struct {
	strategy  api.FillStrategy
	superBase api.Record
	base      api.Record
}

func newDefaults(mergeName string, superBase, base api.Record) (*defaults, error) {
	s, err := unpartial.Strategy(mergeName)
	if err != nil {
		return nil, err
	}
	return &defaults{strategy: s, superBase: superBase, base: base}, nil
}

func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, map[string]string{`message`: err.Error()})
}

// CreateRouter creates the echo.Echo router for the unpartial RESTful service
func CreateRouter(d *defaults, logger hclog.Logger) *echo.Echo {
	doFill := func(c echo.Context) error {
		strategy := d.strategy
		name := c.Param(`strategy`)
		if name == `` {
			name = c.QueryParam(`merge`)
		}
		if name != `` {
			s, err := unpartial.Strategy(name)
			if err != nil {
				return badRequest(c, err)
			}
			strategy = s
		}

		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return err
		}
		partial, err := config.Decode(body, `request body`)
		if err != nil {
			return badRequest(c, err)
		}
		logger.Debug(`fill request`, `strategy`, strategy.Name(), `keys`, len(partial))
		return c.JSON(http.StatusOK, unpartial.Fill(strategy, d.superBase, d.base, partial))
	}

	doLayers := func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			`merge`:     d.strategy.Name(),
			`superBase`: d.superBase,
			`base`:      d.base})
	}

	e := echo.New()
	e.HideBanner = true
	e.POST(`/fill`, doFill)
	e.POST(`/fill/:strategy`, doFill)
	e.GET(`/layers`, doLayers)
	return e
}
