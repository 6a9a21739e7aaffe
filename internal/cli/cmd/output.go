package cmd

import (
	"encoding/json"
	"io"

	"github.com/charmbracelet/huh"
)

// writeJSON outputs v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// confirm asks a yes/no question. The answer defaults to No.
func confirm(title, description, yes, no string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative(yes).
		Negative(no).
		Value(&ok).
		Run()
	if err != nil {
		return false, err
	}
	return ok, nil
}
