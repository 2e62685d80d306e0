package main

import (
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/spf13/cobra"

	"github.com/forestrie/go-octdag/dagstore"
	"github.com/forestrie/go-octdag/octdag"
)

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Voxelize a scene and store the graph",
		Args:  cobra.NoArgs,
		RunE:  runBuild,
	}
	f := cmd.Flags()
	f.String(flagPreset, "", "scene preset, Box or Pillar")
	f.Uint32(flagDepth, 0, "max tree depth, 2 to 16")
	f.String(flagDedup, "", "dedup mode, hashed, linear or none")
	f.Bool(flagDump, false, "write the node structure to stdout")
	f.Bool(flagExclusive, false, "refuse to replace an existing build")
	return cmd
}

func runBuild(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cfg.LogLevel)
	defer logger.OnExit()

	desc, err := cfg.Descriptor()
	if err != nil {
		return err
	}
	opts, err := cfg.BuilderOptions()
	if err != nil {
		return err
	}
	b, err := octdag.NewBuilder(append(opts, octdag.WithLogger(log))...)
	if err != nil {
		return err
	}
	g, err := b.Build(desc, cfg.MaxDepth)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if dump, _ := cmd.Flags().GetBool(flagDump); dump {
		if err := g.Dump(out); err != nil {
			return err
		}
	}

	s, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	c, err := dagstore.NewCommitter(log, s)
	if err != nil {
		return err
	}
	exclusive, _ := cmd.Flags().GetBool(flagExclusive)
	id := dagstore.BuildID(desc.String(), cfg.MaxDepth, g.Stats().Dedup)
	if _, err := c.Commit(cmd.Context(), id, g, exclusive); err != nil {
		return err
	}

	fmt.Fprintln(out, g.SizeString())
	fmt.Fprintf(out, "build: %s\n", id)
	return nil
}
