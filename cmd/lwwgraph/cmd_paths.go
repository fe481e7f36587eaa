// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lwwgraph/core"
	"github.com/katalvlaran/lwwgraph/dfs"
	"github.com/katalvlaran/lwwgraph/snapshot"
)

func newPathsCmd(a *app) *cobra.Command {
	var (
		maxDepth int
		maxPaths int
	)

	cmd := &cobra.Command{
		Use:   "paths SNAPSHOT FROM TO",
		Short: "Print every simple path between two vertices",
		Long: `Load a snapshot and print every simple path FROM → TO over present
edges, one path per line.

Examples:
  lwwgraph paths merged.json 1 7
  lwwgraph paths merged.msgpack a z --max-depth 4 --max-paths 10`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := snapshot.Read[string](args[0])
			if err != nil {
				return err
			}
			g := core.NewGraphFromState(file.State)

			paths, err := g.FindPathsContext(cmd.Context(), args[1], args[2],
				dfs.WithMaxDepth(maxDepth), dfs.WithMaxPaths(maxPaths))
			if err != nil {
				return err
			}
			a.log.Debug("Found paths", "from", args[1], "to", args[2], "count", len(paths))

			w := cmd.OutOrStdout()
			for _, p := range paths {
				fmt.Fprintln(w, strings.Join(p, " -> "))
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", -1, "Maximum path length in edges (-1 = unlimited)")
	cmd.Flags().IntVar(&maxPaths, "max-paths", 0, "Maximum number of paths (0 = unlimited)")

	return cmd
}
