// Utility program to convert a yaml hash on stdin to formatted json on stdout
package main

import (
	"encoding/json"
	"io"
	"log"
	"os"

	"github.com/lyraproj/unpartial/config"
)

func convert(in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	body, err := config.Decode(data, `stdin`)
	if err != nil {
		return err
	}
	bytes, err := json.MarshalIndent(body, ``, ` `)
	if err != nil {
		return err
	}
	_, err = out.Write(append(bytes, '\n'))
	return err
}

func main() {
	if err := convert(os.Stdin, os.Stdout); err != nil {
		log.Fatal(err.Error())
	}
}
