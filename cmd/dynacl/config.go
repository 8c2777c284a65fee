package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/ZenLiuCN/dynacl"
	"github.com/ZenLiuCN/fn"
	"gopkg.in/yaml.v3"
)

// Config of the probe, flags override the file.
type Config struct {
	Library string   `yaml:"library"`
	Debug   bool     `yaml:"debug"`
	Search  []string `yaml:"search"`
}

// LoadConfig reads a YAML config, an empty path gives the zero Config.
func LoadConfig(path string) (c Config, err error) {
	if path == "" {
		return
	}
	var f *os.File
	if f, err = os.Open(path); err != nil {
		return
	}
	defer fn.IgnoreClose(f)
	if err = yaml.NewDecoder(f).Decode(&c); errors.Is(err, io.EOF) {
		err = nil
	}
	return
}

// Resolve the library path: the configured name or the platform default, searched in
// Search dirs then [dynacl.LibDirs]. A bare name that is not found is returned as is
// so the system loader may still find it.
func (c Config) Resolve(goos string) string {
	name := c.Library
	if name == "" {
		name = dynacl.DefaultLibraryName(goos)
	}
	if p, err := dynacl.FindLibrary(name, goos, c.Search...); err == nil {
		return p
	}
	if !filepath.IsAbs(name) && filepath.Base(name) != name {
		if abs, err := filepath.Abs(name); err == nil {
			return abs
		}
	}
	return name
}
