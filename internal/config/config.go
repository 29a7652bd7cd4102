package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

var (
	// ErrNoFields is returned when a form defines no fields
	ErrNoFields = errors.New("config: form has no fields")
	// ErrDuplicateField is returned when two fields share a name
	ErrDuplicateField = errors.New("config: duplicate field name")
)

// Config represents the form configuration
type Config struct {
	Version    int         `toml:"version"`
	Title      string      `toml:"title"`
	UISettings UISettings  `toml:"ui"`
	Fields     []FieldSpec `toml:"fields"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Width           int  `toml:"width"`       // toggle button width in cells
	MaxVisible      int  `toml:"max_visible"` // option rows shown at once
	Mouse           bool `toml:"mouse"`
	PersistOnSubmit bool `toml:"persist_on_submit"`
}

// FieldSpec describes one combo box of the form
type FieldSpec struct {
	Name        string       `toml:"name"`
	Label       string       `toml:"label"`
	Placeholder string       `toml:"placeholder,omitempty"`
	Required    bool         `toml:"required,omitempty"`
	Value       string       `toml:"value,omitempty"`
	Options     []OptionSpec `toml:"options"`
}

// OptionSpec describes one option element
type OptionSpec struct {
	Value    string `toml:"value"`
	Label    string `toml:"label"`
	Disabled bool   `toml:"disabled,omitempty"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service rooted at the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "typeahead", "form.toml"),
	}
}

// NewConfigServiceForPath creates a config service bound to an explicit file
func NewConfigServiceForPath(path string) ConfigService {
	return &configService{
		filePath: path,
	}
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to the demo form
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Parse decodes and validates a TOML form definition
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the structural rules a form must satisfy
func (c *Config) Validate() error {
	if len(c.Fields) == 0 {
		return ErrNoFields
	}
	seen := make(map[string]bool, len(c.Fields))
	for i, f := range c.Fields {
		if f.Name == "" {
			return fmt.Errorf("config: field %d has no name", i)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateField, f.Name)
		}
		seen[f.Name] = true
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.UISettings.Width <= 0 {
		c.UISettings.Width = 32
	}
	if c.UISettings.MaxVisible <= 0 {
		c.UISettings.MaxVisible = 6
	}
}

// Field returns the field with the given name
func (c *Config) Field(name string) (*FieldSpec, bool) {
	for i := range c.Fields {
		if c.Fields[i].Name == name {
			return &c.Fields[i], true
		}
	}
	return nil, false
}

// LabelFor returns the label of the option carrying value
func (f FieldSpec) LabelFor(value string) (string, bool) {
	for _, o := range f.Options {
		if o.Value == value {
			return o.Label, true
		}
	}
	return "", false
}

// Values returns the current value of every field keyed by name
func (c *Config) Values() map[string]string {
	out := make(map[string]string, len(c.Fields))
	for _, f := range c.Fields {
		out[f.Name] = f.Value
	}
	return out
}

// SetValues stores submitted values as the preselected value of each field.
// Names with no matching field are ignored.
func (c *Config) SetValues(values map[string]string) {
	for i := range c.Fields {
		if v, ok := values[c.Fields[i].Name]; ok {
			c.Fields[i].Value = v
		}
	}
}

// DefaultConfig returns the built-in demo form
func DefaultConfig() *Config {
	cfg := &Config{
		Version: 1,
		Title:   "Order",
		UISettings: UISettings{
			Width:      32,
			MaxVisible: 6,
			Mouse:      true,
		},
		Fields: []FieldSpec{
			{
				Name:        "fruit",
				Label:       "Fruit",
				Placeholder: "Select a fruit",
				Required:    true,
				Options: []OptionSpec{
					{Value: "a", Label: "Apple"},
					{Value: "b", Label: "Banana"},
					{Value: "c", Label: "Cherry"},
					{Value: "d", Label: "Durian", Disabled: true},
					{Value: "g", Label: "Grape"},
					{Value: "m", Label: "Mango"},
					{Value: "p", Label: "Pineapple"},
					{Value: "w", Label: "Watermelon"},
				},
			},
			{
				Name:        "size",
				Label:       "Size",
				Placeholder: "Select a size",
				Value:       "m",
				Options: []OptionSpec{
					{Value: "s", Label: "Small"},
					{Value: "m", Label: "Medium"},
					{Value: "l", Label: "Large"},
				},
			},
		},
	}
	return cfg
}
