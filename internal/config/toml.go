package config

import (
	"bytes"
	"errors"

	"github.com/pelletier/go-toml/v2"
)

type tomlDecoder struct{}

func (tomlDecoder) decode(path string, data []byte, into *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(into); err != nil {
		perr := &ParseError{
			Path:    path,
			Format:  "toml",
			Message: err.Error(),
			Err:     err,
		}

		var decErr *toml.DecodeError
		if errors.As(err, &decErr) {
			perr.Line, perr.Column = decErr.Position()
		}
		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) && len(strictErr.Errors) > 0 {
			perr.Line, perr.Column = strictErr.Errors[0].Position()
			perr.Message = "unknown key " + keyString(strictErr.Errors[0].Key())
		}
		return perr
	}
	return nil
}

func keyString(key []string) string {
	var b bytes.Buffer
	for i, k := range key {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(k)
	}
	return b.String()
}
