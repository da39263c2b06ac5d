package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/stylesync/dom/domdbg"
	"github.com/npillmayer/stylesync/internal/scenario"
	"github.com/spf13/cobra"
)

var (
	replayTree bool
	replayDot  bool
)

func init() {
	cmd := newReplayCmd()
	cmd.Flags().BoolVar(&replayTree, "tree", false, "Print the final DOM tree")
	cmd.Flags().BoolVar(&replayDot, "dot", false, "Print the final DOM tree in GraphViz format")
	rootCmd.AddCommand(cmd)
}

func newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <scenario.yaml>",
		Short: "Replay a recomposition scenario",
		Long: `The replay command mounts the element of a scenario file and runs
its passes in order, printing the markup after every pass. Replay fails
at the first pass whose markup differs from its expectation.

Example:
  stylesync replay toggle.yaml
  stylesync replay toggle.yaml --tree
  stylesync replay toggle.yaml --dot | dot -Tsvg -o toggle.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd.OutOrStdout(), args[0])
		},
	}
	return cmd
}

func runReplay(w io.Writer, path string) error {
	sc, err := scenario.Load(path)
	if err != nil {
		return err
	}
	if !replayDot {
		printVerbose(w, "scenario %q: <%s>, %d passes\n", sc.Name, sc.Element, len(sc.Passes))
	}
	root, err := sc.Replay(func(r scenario.Result) {
		if replayDot {
			return
		}
		if verbose && !r.Patch.Empty() {
			fmt.Fprintln(w, r.Patch.String())
		}
		fmt.Fprintf(w, "pass %d: %s\n", r.Pass, r.HTML)
	})
	if err != nil {
		return err
	}
	switch {
	case replayDot:
		return domdbg.ToGraphViz(root, w)
	case replayTree:
		fmt.Fprint(w, domdbg.Print(root))
	}
	return nil
}
