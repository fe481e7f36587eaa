// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lwwgraph/core"
	"github.com/katalvlaran/lwwgraph/snapshot"
)

func newMergeCmd(a *app) *cobra.Command {
	var replica string

	cmd := &cobra.Command{
		Use:   "merge OUT IN...",
		Short: "Merge snapshot files into one",
		Long: `Merge every IN snapshot into a fresh replica and write it to OUT.
Formats follow the file extensions (.json, .msgpack).

Examples:
  lwwgraph merge merged.json out/a.json out/b.msgpack`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, inputs := args[0], args[1:]
			g := core.NewGraph[string](a.collector.For(replica)...)

			for _, in := range inputs {
				file, err := snapshot.Read[string](in)
				if err != nil {
					return err
				}
				rep := g.Merge(file.State)
				a.log.Info("Merged snapshot", "path", in, "replica", file.Replica,
					"entries", rep.Entries, "changed", rep.Changed())
			}

			merged := g.Snapshot()
			if err := snapshot.Write(out, snapshot.New(replica, merged)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "merged %d snapshots into %s: %d vertices, %d edges, %d entries\n",
				len(inputs), out, len(g.Vertices()), len(g.Edges()), merged.Len())

			return nil
		},
	}
	cmd.Flags().StringVar(&replica, "replica", "merged", "Replica name recorded in OUT")

	return cmd
}
