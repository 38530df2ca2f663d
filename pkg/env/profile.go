package env

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/go-keel/keel/pkg/graphics"
)

// LoadProfile applies a YAML document of key/value overrides on top of an
// environment and returns the overlay. Persisted theme and configuration
// values enter the engine only through this path.
//
// Every key in the document must name a declared env key, and its value
// must convert to the key's declared type; anything else is an error so a
// typo in a theme file fails loudly at load time, not silently at paint
// time.
func LoadProfile(base Env, doc []byte) (Env, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(doc, &raw); err != nil {
		return base, fmt.Errorf("env profile: %w", err)
	}

	next := cloneStore(base.store)
	for name, value := range raw {
		registryMu.Lock()
		conv, ok := registry[name]
		registryMu.Unlock()
		if !ok {
			return base, fmt.Errorf("env profile: unknown key %q", name)
		}
		typed, err := conv(value)
		if err != nil {
			return base, fmt.Errorf("env profile: key %q: %w", name, err)
		}
		next.values[name] = typed
	}
	return Env{store: next}, nil
}

// convert coerces a decoded YAML scalar into the key's declared type.
// YAML decodes numbers as int or float64 depending on spelling, so
// numeric targets accept both; colors are spelled as "#RRGGBB" strings.
func convert[T any](raw any) (any, error) {
	var zero T
	switch any(zero).(type) {
	case float64:
		switch v := raw.(type) {
		case float64:
			return v, nil
		case int:
			return float64(v), nil
		}
	case int:
		if v, ok := raw.(int); ok {
			return v, nil
		}
	case bool:
		if v, ok := raw.(bool); ok {
			return v, nil
		}
	case string:
		if v, ok := raw.(string); ok {
			return v, nil
		}
	case graphics.Color:
		if v, ok := raw.(string); ok {
			return graphics.ParseColor(v)
		}
	case graphics.Insets:
		switch v := raw.(type) {
		case float64:
			return graphics.InsetsAll(v), nil
		case int:
			return graphics.InsetsAll(float64(v)), nil
		}
	default:
		if v, ok := raw.(T); ok {
			return v, nil
		}
		return nil, fmt.Errorf("type %T not loadable from a profile", zero)
	}
	return nil, fmt.Errorf("cannot convert %T to %T", raw, zero)
}
