package tgnotify

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	yaml "go.yaml.in/yaml/v3"
)

// LoadFile reads a Config from a JSON or YAML file:
//
//	token: "123456:ABC-DEF"
//	destinations:
//	  - 12345678
//	  - -1001234567890
//	  - "@mychannel"
//
// Unknown fields and trailing data are rejected. Like FromEnv, a missing
// token or an empty destination list is fatal.
func LoadFile(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	jb, err := coerceToJSONBytes(path, b)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	var fc fileConfig
	dec := json.NewDecoder(bytes.NewReader(jb))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	// reject trailing tokens (e.g. concatenated JSON)
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Config{}, fmt.Errorf("%s: trailing data", path)
		}
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	cfg := Config{Token: strings.TrimSpace(fc.Token)}
	for _, d := range fc.Destinations {
		cfg.Destinations = append(cfg.Destinations, Destination(d))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

type fileConfig struct {
	Token        string            `json:"token"`
	Destinations []fileDestination `json:"destinations"`
}

// fileDestination accepts either a bare number (chat ID) or a string
// identifier, so YAML lists can mix the two.
type fileDestination Destination

func (d *fileDestination) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		dd, ok := ParseDestination(s)
		if !ok {
			return errors.New("empty destination")
		}
		*d = fileDestination(dd)
		return nil
	}
	var id int64
	if err := json.Unmarshal(b, &id); err != nil {
		return fmt.Errorf("invalid destination %s", string(b))
	}
	*d = fileDestination(Destination{ChatID: id})
	return nil
}

// coerceToJSONBytes converts YAML config to JSON bytes so we can re-use the
// strict JSON decoder (DisallowUnknownFields) for both formats.
func coerceToJSONBytes(path string, data []byte) ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return data, nil
	}

	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	v = normalizeYAML(v)

	j, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yaml->json marshal: %w", err)
	}
	return j, nil
}

// normalizeYAML ensures all map keys are strings so the result can be
// JSON-marshaled.
func normalizeYAML(in any) any {
	switch x := in.(type) {
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, v := range x {
			m[fmt.Sprint(k)] = normalizeYAML(v)
		}
		return m
	case map[string]any:
		m := make(map[string]any, len(x))
		for k, v := range x {
			m[k] = normalizeYAML(v)
		}
		return m
	case []any:
		for i := range x {
			x[i] = normalizeYAML(x[i])
		}
		return x
	default:
		return in
	}
}
