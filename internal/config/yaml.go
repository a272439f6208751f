package config

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

type yamlDecoder struct{}

func (yamlDecoder) decode(path string, data []byte, into *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(into); err != nil {
		// An empty document decodes to nothing.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return &ParseError{
			Path:    path,
			Format:  "yaml",
			Message: err.Error(),
			Err:     err,
		}
	}
	return nil
}
