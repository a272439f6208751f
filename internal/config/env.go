package config

import (
	"sort"
	"strconv"
	"strings"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "VIMOTION_"

// LookupFunc reads an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// envSetting applies one environment variable to a Config.
type envSetting struct {
	field string
	apply func(c *Config, value string) error
}

// envMapping maps environment variables to settings.
var envMapping = map[string]envSetting{
	EnvPrefix + "LOG_LEVEL": {"logging.level", func(c *Config, v string) error {
		c.Logging.Level = v
		return nil
	}},
	EnvPrefix + "LOG_FILE": {"logging.file", func(c *Config, v string) error {
		c.Logging.File = v
		return nil
	}},
	EnvPrefix + "INITIAL_MODE": {"engine.initial_mode", func(c *Config, v string) error {
		c.Engine.InitialMode = strings.ToLower(v)
		return nil
	}},
	EnvPrefix + "MAX_COUNT": {"engine.max_count", func(c *Config, v string) error {
		return setInt(&c.Engine.MaxCount, v)
	}},
	EnvPrefix + "SHOW_PENDING": {"engine.show_pending", func(c *Config, v string) error {
		return setBool(&c.Engine.ShowPending, v)
	}},
	EnvPrefix + "TAB_WIDTH": {"terminal.tab_width", func(c *Config, v string) error {
		return setInt(&c.Terminal.TabWidth, v)
	}},
	EnvPrefix + "WATCH": {"terminal.watch", func(c *Config, v string) error {
		return setBool(&c.Terminal.Watch, v)
	}},
}

// EnvVars returns the supported environment variable names, sorted.
func EnvVars() []string {
	names := make([]string, 0, len(envMapping))
	for name := range envMapping {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyEnv overlays environment overrides onto c. Empty values are treated
// as set.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	for _, name := range EnvVars() {
		val, ok := lookup(name)
		if !ok {
			continue
		}
		setting := envMapping[name]
		if err := setting.apply(c, strings.TrimSpace(val)); err != nil {
			return &ValidationError{
				Field:   setting.field,
				Message: "invalid value in " + name,
				Value:   val,
				Err:     err,
			}
		}
	}
	return nil
}

func setInt(dst *int, v string) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

// setBool accepts the usual boolean spellings.
func setBool(dst *bool, v string) error {
	switch strings.ToLower(v) {
	case "true", "yes", "on", "1":
		*dst = true
	case "false", "no", "off", "0":
		*dst = false
	default:
		return strconv.ErrSyntax
	}
	return nil
}
