package main

import (
	"fmt"
	"io"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/forestrie/go-octdag/dagstore"
	"github.com/forestrie/go-octdag/octdag"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <buildID>",
		Short: "Load, verify and summarize a stored build",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	cmd.Flags().Bool(flagDump, false, "write the node structure to stdout")
	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("build id %q: %w", args[0], err)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cfg.LogLevel)
	defer logger.OnExit()

	s, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	g, m, err := dagstore.Load(cmd.Context(), s, id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	writeManifest(out, m, g)
	if dump, _ := cmd.Flags().GetBool(flagDump); dump {
		return g.Dump(out)
	}
	return nil
}

func writeManifest(w io.Writer, m dagstore.Manifest, g *octdag.Graph) {
	id, _ := m.ID()
	fmt.Fprintf(w, "build: %s\n", id)
	fmt.Fprintf(w, "scene: %s\n", m.Scene)
	fmt.Fprintf(w, "max depth: %d\n", m.MaxDepth)
	fmt.Fprintf(w, "dedup: %s\n", m.Stats.Dedup)
	fmt.Fprintf(w, "digest: %x\n", m.Digest)
	fmt.Fprintf(w, "levels: %v\n", m.Stats.LevelNodes)
	fmt.Fprintf(w, "shared: %d, leaves: %d, empty: %d\n", m.Stats.Shared, m.Stats.Leaves, m.Stats.Empty)
	fmt.Fprintln(w, g.SizeString())
}
