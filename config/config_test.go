package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-octdag/octdag"
	"github.com/forestrie/go-octdag/scene"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	d, err := cfg.Descriptor()
	require.NoError(t, err)
	assert.Equal(t, "Pillar", d.Name)
	assert.Len(t, d.Pairs, 3)
	assert.Equal(t, uint32(6), cfg.MaxDepth)
}

func TestDecodeOverridesDefaults(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
preset = "box"
max_depth = 3
dedup = "linear"

[prefilter]
bits_per_element = 16
k = 4
`))
	require.NoError(t, err)
	assert.Equal(t, "box", cfg.Preset)
	assert.Equal(t, uint32(3), cfg.MaxDepth)
	assert.Equal(t, uint64(16), cfg.Prefilter.BitsPerElement)
	assert.Equal(t, uint8(4), cfg.Prefilter.K)
	// Untouched fields keep their defaults.
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, StoreDir, cfg.Store.Kind)

	opts, err := cfg.BuilderOptions()
	require.NoError(t, err)
	b, err := octdag.NewBuilder(opts...)
	require.NoError(t, err)
	d, err := cfg.Descriptor()
	require.NoError(t, err)
	g, err := b.Build(d, cfg.MaxDepth)
	require.NoError(t, err)
	assert.Equal(t, "linear", g.Stats().Dedup)
}

func TestDecodeCustomScene(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
max_depth = 4

[scene]
name = "floor"

[[scene.pairs]]
volume = "perimeter"
material = "clear-blue"

[[scene.pairs]]
volume = "plane"
material = "red-z-gradient"
`))
	require.NoError(t, err)

	d, err := cfg.Descriptor()
	require.NoError(t, err)
	assert.Equal(t, "floor", d.Name)
	assert.Equal(t, "perimeter:clear-blue,plane:red-z-gradient", d.String())
	assert.Zero(t, d.MinDepth)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want error
	}{
		{"unknown key", `colour = "red"`, ErrBadConfig},
		{"bad syntax", `max_depth = `, ErrBadConfig},
		{"depth too deep", `max_depth = 17`, octdag.ErrDepthOutOfRange},
		{"depth too shallow", `max_depth = 1`, octdag.ErrDepthOutOfRange},
		{"preset minimum", "preset = \"Pillar\"\nmax_depth = 3", scene.ErrDepthBelowMinimum},
		{"unknown preset", `preset = "Cave"`, scene.ErrUnknownPreset},
		{"unknown dedup", `dedup = "bloom"`, octdag.ErrBadDedupMode},
		{"unknown store", "[store]\nkind = \"s3\"", ErrBadStore},
		{"blob without account", "[store]\nkind = \"blob\"", ErrBadConfig},
		{"unknown volume", "[[scene.pairs]]\nvolume = \"sphere\"\nmaterial = \"clear-blue\"", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.toml))
			require.Error(t, err)
			if tc.want != nil {
				require.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestLoadAndEncode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "octdag.toml")
	require.NoError(t, os.WriteFile(path, []byte("preset = \"Box\"\nmax_depth = 5\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint32(5), cfg.MaxDepth)

	var buf bytes.Buffer
	require.NoError(t, cfg.Encode(&buf))
	again, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
}

func TestStoreValidate(t *testing.T) {
	account := Store{
		Kind:          StoreBlob,
		Container:     "octdags",
		Account:       "octdagstore",
		ResourceGroup: "octdag-rg",
		Subscription:  "0000-sub",
	}
	tests := []struct {
		name  string
		store Store
		want  error
	}{
		{"dir", Store{Kind: StoreDir, Dir: "octdags"}, nil},
		{"dir without dir", Store{Kind: StoreDir}, ErrBadConfig},
		{"blob account", account, nil},
		{"blob emulator", Store{Kind: StoreBlob, Container: "octdags", Emulator: true}, nil},
		{"blob without container", Store{Kind: StoreBlob, Emulator: true}, ErrBadConfig},
		{"blob without subscription", Store{
			Kind: StoreBlob, Container: "octdags", Account: "octdagstore", ResourceGroup: "octdag-rg",
		}, ErrBadConfig},
		{"unknown", Store{Kind: "s3"}, ErrBadStore},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.store.Validate()
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDecodeBlobAccount(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
[store]
kind = "blob"
container = "scenes"
account = "octdagstore"
resource_group = "octdag-rg"
subscription = "0000-sub"
`))
	require.NoError(t, err)
	assert.Equal(t, "octdagstore", cfg.Store.Account)
	assert.Equal(t, "octdag-rg", cfg.Store.ResourceGroup)
	assert.Equal(t, "0000-sub", cfg.Store.Subscription)
	assert.False(t, cfg.Store.Emulator)

	var buf bytes.Buffer
	require.NoError(t, cfg.Encode(&buf))
	again, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}
