package roster

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// document is the on-disk shape of a roster file.
type document struct {
	Players Roster `yaml:"players"`
}

// Decode reads a YAML roster document from rd and validates it.
// Unknown fields are rejected so that typos ("hnd:") do not silently
// produce zero-valued batters.
func Decode(rd io.Reader) (Roster, error) {
	var doc document
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyRoster
		}

		return nil, fmt.Errorf("roster: decode: %w", err)
	}
	if len(doc.Players) == 0 {
		return nil, ErrEmptyRoster
	}
	if err := doc.Players.Validate(); err != nil {
		return nil, err
	}

	return doc.Players, nil
}

// LoadFile opens path and decodes it with Decode.
func LoadFile(path string) (Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("roster: open %s: %w", path, err)
	}
	defer f.Close()

	r, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return r, nil
}

// Encode writes r as a YAML roster document.
func Encode(w io.Writer, r Roster) error {
	if err := r.Validate(); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Players: r}); err != nil {
		return fmt.Errorf("roster: encode: %w", err)
	}

	return enc.Close()
}
