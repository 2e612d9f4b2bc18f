package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

// DefaultSettingsFile is read from the working directory when present.
const DefaultSettingsFile = "langtour.yaml"

// Settings is the on-disk form of the defaults, langtour.yaml.
type Settings struct {
	Plan      string `yaml:"plan,omitempty" json:"plan,omitempty" jsonschema:"description=Tour plan file or directory of .hcl files"`
	LogLevel  string `yaml:"log_level,omitempty" json:"log_level,omitempty" jsonschema:"enum=debug,enum=info,enum=warn,enum=error"`
	LogFormat string `yaml:"log_format,omitempty" json:"log_format,omitempty" jsonschema:"enum=text,enum=json"`
	Format    string `yaml:"format,omitempty" json:"format,omitempty" jsonschema:"enum=plain,enum=pretty,enum=json"`
	Workers   int    `yaml:"workers,omitempty" json:"workers,omitempty" jsonschema:"minimum=1,maximum=64"`
	Timeout   string `yaml:"timeout,omitempty" json:"timeout,omitempty" jsonschema:"description=Per-lesson timeout as a Go duration,example=5s"`
	Verify    *bool  `yaml:"verify,omitempty" json:"verify,omitempty" jsonschema:"description=Compare each lesson's output with its documented output"`
	Listen    string `yaml:"listen,omitempty" json:"listen,omitempty" jsonschema:"description=host:port for the serve command,example=127.0.0.1:8080"`
}

// LoadSettings reads a settings file. A missing file yields nil settings and
// no error when optional is true.
func LoadSettings(path string, optional bool) (*Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open settings file: %w", err)
	}
	defer f.Close()

	return DecodeSettings(f, path)
}

// DecodeSettings parses YAML settings from r. Unknown keys are rejected.
func DecodeSettings(r io.Reader, name string) (*Settings, error) {
	var s Settings
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode settings file %s: %w", name, err)
	}
	return &s, nil
}

// SettingsSchema returns the JSON Schema of the settings file.
func SettingsSchema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(&Settings{})
	schema.Title = "langtour settings"

	b, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return b, nil
}
