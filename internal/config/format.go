package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// decoder parses one file format into a Config.
type decoder interface {
	decode(path string, data []byte, into *Config) error
}

// decoderFor picks a decoder from the file extension.
func decoderFor(path string) (decoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return tomlDecoder{}, nil
	case ".yaml", ".yml":
		return yamlDecoder{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}
