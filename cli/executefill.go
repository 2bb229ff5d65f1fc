package cli

import (
	"bytes"
	"io"

	"github.com/lyraproj/unpartial/unpartial"
)

// ExecuteFill performs a fill using the CLI. It's primarily intended for testing purposes
func ExecuteFill(stdin io.Reader, args ...string) (output []byte, err error) {
	cmdOpts = unpartial.CommandOptions{}
	logLevel = ``

	cmd := NewCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	cmd.SetArgs(args)

	err = cmd.Execute()

	return buf.Bytes(), err
}
