package unpartial

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lyraproj/unpartial/api"
	"gopkg.in/yaml.v3"
)

// RenderName is the name of the option value that describes how to render output
type RenderName string

const (
	// YAML render output in YAML
	YAML = RenderName(`yaml`)
	// JSON render output in JSON
	JSON = RenderName(`json`)
	// Text render output as plain text
	Text = RenderName(`s`)
)

// Render renders a value on a writer using a specified RenderName
func Render(renderAs RenderName, value interface{}, out io.Writer) error {
	switch renderAs {
	case JSON:
		if value == nil {
			_, err := io.WriteString(out, "null\n")
			return err
		}
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		return enc.Encode(value)

	case YAML:
		if value == nil {
			_, err := io.WriteString(out, "\n")
			return err
		}
		bs, err := yaml.Marshal(value)
		if err != nil {
			return err
		}
		_, err = out.Write(bs)
		return err

	case Text:
		_, err := fmt.Fprintln(out, value)
		return err

	default:
		return api.UnknownRendering(string(renderAs))
	}
}
