package probe

import (
	"fmt"
	"strings"
)

// Config is a read-only snapshot of the settings block. A key is present
// when it resolves to a non-empty value. Lookups are case-insensitive and
// nested maps are addressed with dotted keys ("backends.insee.api_key").
type Config struct {
	values map[string]string
}

// NewConfig flattens settings into the lookup table. The input is not retained.
func NewConfig(settings map[string]any) *Config {
	c := &Config{values: make(map[string]string)}
	flatten("", settings, c.values)
	return c
}

func flatten(prefix string, in map[string]any, out map[string]string) {
	for k, v := range in {
		key := strings.ToUpper(k)
		if prefix != "" {
			key = prefix + "." + key
		}
		switch t := v.(type) {
		case map[string]any:
			flatten(key, t, out)
		case nil:
			out[key] = ""
		default:
			out[key] = strings.TrimSpace(fmt.Sprint(t))
		}
	}
}

func (c *Config) Present(key string) bool {
	return c.Value(key) != ""
}

// Value returns the configured value for key, empty when absent.
func (c *Config) Value(key string) string {
	return c.values[strings.ToUpper(strings.TrimSpace(key))]
}

// Keys returns the number of flattened keys held.
func (c *Config) Keys() int {
	return len(c.values)
}
