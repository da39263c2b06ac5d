package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/stylesync/dom/style/inline"
	"github.com/npillmayer/stylesync/maybe"
	"github.com/spf13/cobra"
)

var (
	diffFrom string
	diffTo   string
	diffLive string
)

func init() {
	cmd := newDiffCmd()
	cmd.Flags().StringVar(&diffFrom, "from", "", "Declarations of the previous pass (omit for a first pass)")
	cmd.Flags().StringVar(&diffTo, "to", "", "Declarations of the next pass")
	cmd.Flags().StringVar(&diffLive, "live", "", "Current style attribute (defaults to --from)")
	rootCmd.AddCommand(cmd)
}

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff --to <declarations> [--from <declarations>] [--live <style>]",
		Short: "Show the patch between two passes",
		Long: `The diff command computes the mutations a pass applies to an element's
inline style. Lines starting with '-' remove a property, lines starting
with '+' set one. The resulting style attribute is printed last.

Example:
  stylesync diff --to "color: red;"
  stylesync diff --from "color: red;" --to "color: green; opacity: 0.4;"
  stylesync diff --from "opacity: 0.4;" --to "opacity: 0.5;" --live "opacity: 0.4; z-index: 2;"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd.OutOrStdout(), cmd.Flags().Changed("from"), cmd.Flags().Changed("live"))
		},
	}
	return cmd
}

func runDiff(w io.Writer, hasFrom, hasLive bool) error {
	previous := maybe.Nothing[inline.Snapshot]()
	if hasFrom {
		from, err := inline.Parse(diffFrom)
		if err != nil {
			return fmt.Errorf("--from: %w", err)
		}
		previous = maybe.Just(from)
	}
	next, err := inline.Parse(diffTo)
	if err != nil {
		return fmt.Errorf("--to: %w", err)
	}
	live := previous.WithDefault(inline.Snapshot{})
	if hasLive {
		if live, err = inline.Parse(diffLive); err != nil {
			return fmt.Errorf("--live: %w", err)
		}
	}
	printVerbose(w, "previous: %q\nnext:     %q\nlive:     %q\n", diffFrom, next.String(), live.String())
	patch := inline.Diff(previous, next, live)
	if patch.Empty() {
		fmt.Fprintln(w, "(no changes)")
	} else {
		fmt.Fprintln(w, patch.String())
	}
	fmt.Fprintf(w, "style=%q\n", patch.Materialize(live).String())
	return nil
}
