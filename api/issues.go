package api

import (
	"fmt"
)

// JSONNotHash creates an error with a descriptive text and returns it.
func JSONNotHash(path string) error {
	return fmt.Errorf(`file '%s' does not contain a JSON object`, path)
}

// MissingRequiredOption creates an error with a descriptive text and returns it.
func MissingRequiredOption(option string) error {
	return fmt.Errorf(`missing required option '%s'`, option)
}

// UnknownFillStrategy creates an error with a descriptive text and returns it.
func UnknownFillStrategy(name string) error {
	return fmt.Errorf(`unknown fill strategy '%s'`, name)
}

// UnknownRendering creates an error with a descriptive text and returns it.
func UnknownRendering(name string) error {
	return fmt.Errorf(`unknown rendering '%s'`, name)
}

// YamlNotHash creates an error with a descriptive text and returns it.
func YamlNotHash(path string) error {
	return fmt.Errorf(`file '%s' does not contain a YAML hash`, path)
}
