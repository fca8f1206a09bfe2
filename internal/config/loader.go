package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for files whose extension has no loader.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// FileLoader decodes one configuration file format.
type FileLoader interface {
	Load(r io.Reader, target any) error
	Extensions() []string
}

// TOMLLoader decodes TOML files.
type TOMLLoader struct{}

func (TOMLLoader) Load(r io.Reader, target any) error {
	_, err := toml.NewDecoder(r).Decode(target)
	return err
}

func (TOMLLoader) Extensions() []string { return []string{".toml"} }

// YAMLLoader decodes YAML files. An empty document leaves target unchanged.
type YAMLLoader struct{}

func (YAMLLoader) Load(r io.Reader, target any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (YAMLLoader) Extensions() []string { return []string{".yaml", ".yml"} }

var loaders = map[string]FileLoader{}

func init() {
	RegisterLoader(TOMLLoader{})
	RegisterLoader(YAMLLoader{})
}

// RegisterLoader registers l for each of its extensions.
func RegisterLoader(l FileLoader) {
	for _, ext := range l.Extensions() {
		loaders[ext] = l
	}
}

// LoaderFor returns the loader registered for the extension of path.
func LoaderFor(path string) (FileLoader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	l, ok := loaders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return l, nil
}

// Load reads path over the defaults and validates the result. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if err := DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// DecodeFile decodes path into target with the loader for its extension.
func DecodeFile(path string, target any) error {
	l, err := LoaderFor(path)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := l.Load(f, target); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Save writes cfg as TOML.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
