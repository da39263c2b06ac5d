package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/stylesync/dom/style"
	"github.com/npillmayer/stylesync/dom/style/inline"
	"github.com/spf13/cobra"
)

var renderGroups bool

func init() {
	cmd := newRenderCmd()
	cmd.Flags().BoolVar(&renderGroups, "groups", false, "List declarations by property group")
	rootCmd.AddCommand(cmd)
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <declarations>...",
		Short: "Render declaration blocks in canonical form",
		Long: `The render command evaluates one or more declaration blocks in order,
as consecutive style blocks of a single pass, and prints the resulting
style attribute. Later declarations of a property replace earlier ones
and move to the end.

Example:
  stylesync render "color: red; padding: 1px;" "color: green;"
  stylesync render --groups "margin-top: 0; color: red;"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.OutOrStdout(), args)
		},
	}
	return cmd
}

func runRender(w io.Writer, args []string) error {
	b := inline.NewBuilder()
	for _, text := range args {
		decls, err := inline.Parse(text)
		if err != nil {
			return err
		}
		printVerbose(w, "block %q: %d declarations\n", text, decls.Len())
		b.AppendAll(decls)
	}
	snap := b.Build()
	if !renderGroups {
		fmt.Fprintln(w, snap.String())
		return nil
	}
	groups := style.GroupDeclarations(snap.Declarations())
	for _, g := range style.AllGroups {
		decls, ok := groups[g]
		if !ok {
			continue
		}
		parts := make([]string, len(decls))
		for i, kv := range decls {
			parts[i] = kv.String()
		}
		fmt.Fprintf(w, "%s: %s\n", g, strings.Join(parts, " "))
	}
	return nil
}
