package main

import (
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/spf13/cobra"

	"github.com/forestrie/go-octdag/config"
	"github.com/forestrie/go-octdag/dagstore"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the builds in the dir store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.Store.Kind != config.StoreDir {
				return fmt.Errorf("%w: list supports only the dir store", config.ErrBadStore)
			}
			log := newLogger(cfg.LogLevel)
			defer logger.OnExit()

			ids, err := dagstore.NewDirStore(cfg.Store.Dir, log).List(cmd.Context())
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}
