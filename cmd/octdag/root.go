package main

import (
	"github.com/datatrails/go-datatrails-common/azblob"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/spf13/cobra"

	"github.com/forestrie/go-octdag/config"
	"github.com/forestrie/go-octdag/dagstore"
)

const (
	serviceName = "octdag"

	flagConfig    = "config"
	flagLogLevel  = "log-level"
	flagStore     = "store"
	flagOut       = "out"
	flagContainer = "container"
	flagAccount   = "account"
	flagGroup     = "resource-group"
	flagSub       = "subscription"
	flagEmulator  = "emulator"
	flagPreset    = "preset"
	flagDepth     = "depth"
	flagDedup     = "dedup"
	flagDump      = "dump"
	flagExclusive = "fail-if-exists"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "octdag",
		Short:        "Build and inspect sparse voxel octree DAGs",
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.String(flagConfig, "", "TOML configuration file")
	pf.String(flagLogLevel, "", "log level, overrides the configuration")
	pf.String(flagStore, "", "store kind, dir or blob")
	pf.String(flagOut, "", "root directory of the dir store")
	pf.String(flagContainer, "", "container of the blob store")
	pf.String(flagAccount, "", "storage account of the blob store")
	pf.String(flagGroup, "", "resource group of the storage account")
	pf.String(flagSub, "", "subscription of the storage account")
	pf.Bool(flagEmulator, false, "use a local Azurite emulator for the blob store")

	root.AddCommand(newBuildCmd(), newInspectCmd(), newListCmd(), newConfigCmd())
	return root
}

// loadConfig reads the configuration file, if any, then applies every flag
// the user set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()

	cfg := config.Default()
	path, _ := flags.GetString(flagConfig)
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}

	str := func(name string, dst *string) {
		if flags.Lookup(name) != nil && flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	str(flagLogLevel, &cfg.LogLevel)
	str(flagStore, &cfg.Store.Kind)
	str(flagOut, &cfg.Store.Dir)
	str(flagContainer, &cfg.Store.Container)
	str(flagAccount, &cfg.Store.Account)
	str(flagGroup, &cfg.Store.ResourceGroup)
	str(flagSub, &cfg.Store.Subscription)
	if flags.Changed(flagEmulator) {
		cfg.Store.Emulator, _ = flags.GetBool(flagEmulator)
	}
	str(flagDedup, &cfg.Dedup)
	if flags.Lookup(flagPreset) != nil && flags.Changed(flagPreset) {
		cfg.Preset, _ = flags.GetString(flagPreset)
		// An explicit preset replaces any scene from the file.
		cfg.Scene = config.Scene{}
	}
	if flags.Lookup(flagDepth) != nil && flags.Changed(flagDepth) {
		cfg.MaxDepth, _ = flags.GetUint32(flagDepth)
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(level string) logger.Logger {
	logger.New(level)
	return logger.Sugar.WithServiceName(serviceName)
}

func openStore(cfg config.Config, log logger.Logger) (dagstore.ObjectReaderWriter, error) {
	if err := cfg.Store.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Store.Kind {
	case config.StoreBlob:
		storer, err := newBlobStorer(cfg.Store)
		if err != nil {
			return nil, err
		}
		return dagstore.NewBlobStore(storer, log), nil
	default:
		return dagstore.NewDirStore(cfg.Store.Dir, log), nil
	}
}

// newBlobStorer connects to the configured storage account, or to Azurite
// when the emulator is selected.
func newBlobStorer(s config.Store) (*azblob.Storer, error) {
	if s.Emulator {
		return azblob.NewDev(azblob.NewDevConfigFromEnv(), s.Container)
	}
	return azblob.New(s.Account, s.ResourceGroup, s.Subscription, s.Container)
}
