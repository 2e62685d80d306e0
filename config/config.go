// Package config loads build settings from TOML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/forestrie/go-octdag/octdag"
	"github.com/forestrie/go-octdag/scene"
	"github.com/forestrie/go-octdag/volume"
)

const (
	DefaultPreset    = "Pillar"
	DefaultMaxDepth  = 6
	DefaultDedup     = "hashed"
	DefaultLogLevel  = "INFO"
	DefaultOutDir    = "octdags"
	DefaultContainer = "octdags"

	StoreDir  = "dir"
	StoreBlob = "blob"
)

var (
	ErrBadConfig = errors.New("config: invalid configuration")
	ErrBadStore  = errors.New("config: unknown store kind")
)

// Prefilter sizes the signature filters used by linear dedup.
type Prefilter struct {
	BitsPerElement uint64 `toml:"bits_per_element"`
	K              uint8  `toml:"k"`
}

// Pair names one scene volume and its material.
type Pair struct {
	Volume   string `toml:"volume"`
	Material string `toml:"material"`
}

// Scene, when it lists pairs, replaces the preset.
type Scene struct {
	Name     string `toml:"name"`
	MinDepth uint32 `toml:"min_depth"`
	Pairs    []Pair `toml:"pairs,omitempty"`
}

type Store struct {
	Kind string `toml:"kind"`
	// Dir is the local root for the dir store.
	Dir string `toml:"dir"`
	// Container is the blob container for the blob store.
	Container string `toml:"container"`

	// The storage account is located through the resource group and
	// subscription. Credentials come from the standard AZURE_* environment.
	Account       string `toml:"account,omitempty"`
	ResourceGroup string `toml:"resource_group,omitempty"`
	Subscription  string `toml:"subscription,omitempty"`
	// Emulator targets a local Azurite instance instead of an account.
	Emulator bool `toml:"emulator,omitempty"`
}

// Validate checks the settings the selected kind needs.
func (s Store) Validate() error {
	switch s.Kind {
	case StoreDir:
		if s.Dir == "" {
			return fmt.Errorf("%w: dir store needs a dir", ErrBadConfig)
		}
	case StoreBlob:
		if s.Container == "" {
			return fmt.Errorf("%w: blob store needs a container", ErrBadConfig)
		}
		if s.Emulator {
			return nil
		}
		if s.Account == "" || s.ResourceGroup == "" || s.Subscription == "" {
			return fmt.Errorf(
				"%w: blob store needs account, resource_group and subscription, or emulator", ErrBadConfig)
		}
	default:
		return fmt.Errorf("%w: %q", ErrBadStore, s.Kind)
	}
	return nil
}

type Config struct {
	Preset    string    `toml:"preset"`
	MaxDepth  uint32    `toml:"max_depth"`
	Dedup     string    `toml:"dedup"`
	LogLevel  string    `toml:"log_level"`
	Prefilter Prefilter `toml:"prefilter"`
	Scene     Scene     `toml:"scene"`
	Store     Store     `toml:"store"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Preset:   DefaultPreset,
		MaxDepth: DefaultMaxDepth,
		Dedup:    DefaultDedup,
		LogLevel: DefaultLogLevel,
		Prefilter: Prefilter{
			BitsPerElement: octdag.DefaultPrefilterBitsPerElement,
			K:              octdag.DefaultPrefilterK,
		},
		Store: Store{Kind: StoreDir, Dir: DefaultOutDir, Container: DefaultContainer},
	}
}

// Load reads path over the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads TOML from r over the defaults and validates the result.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("%w: %s", ErrBadConfig, strict.String())
		}
		return Config{}, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).SetIndentTables(true).Encode(c)
}

// Validate checks every field that can be checked without building.
func (c Config) Validate() error {
	if err := octdag.CheckMaxDepth(c.MaxDepth); err != nil {
		return fmt.Errorf("%w: max_depth %d", err, c.MaxDepth)
	}
	if _, err := octdag.ParseDedupMode(c.Dedup); err != nil {
		return err
	}
	if err := c.Store.Validate(); err != nil {
		return err
	}
	if _, err := c.Descriptor(); err != nil {
		return err
	}
	return nil
}

// Descriptor resolves the scene: the explicit pairs when present, otherwise
// the preset. The result is checked against MaxDepth.
func (c Config) Descriptor() (scene.Descriptor, error) {
	if len(c.Scene.Pairs) == 0 {
		p, err := scene.ParsePreset(c.Preset)
		if err != nil {
			return scene.Descriptor{}, err
		}
		return p.DescriptorFor(c.MaxDepth)
	}

	pairs := make([]scene.Pair, 0, len(c.Scene.Pairs))
	for i, p := range c.Scene.Pairs {
		v, err := volume.ParseVolumeKind(p.Volume)
		if err != nil {
			return scene.Descriptor{}, fmt.Errorf("scene pair %d: %w", i, err)
		}
		m, err := volume.ParseMaterialKind(p.Material)
		if err != nil {
			return scene.Descriptor{}, fmt.Errorf("scene pair %d: %w", i, err)
		}
		pairs = append(pairs, scene.Pair{Volume: v, Material: m})
	}
	name := strings.TrimSpace(c.Scene.Name)
	if name == "" {
		name = "custom"
	}
	d := scene.NewDescriptor(name, c.Scene.MinDepth, pairs...)
	if err := d.Validate(c.MaxDepth); err != nil {
		return scene.Descriptor{}, err
	}
	return d, nil
}

// BuilderOptions maps the dedup and prefilter settings to builder options.
func (c Config) BuilderOptions() ([]octdag.BuilderOption, error) {
	mode, err := octdag.ParseDedupMode(c.Dedup)
	if err != nil {
		return nil, err
	}
	return []octdag.BuilderOption{
		octdag.WithDedup(mode),
		octdag.WithPrefilter(c.Prefilter.BitsPerElement, c.Prefilter.K),
	}, nil
}
