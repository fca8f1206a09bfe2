package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func (c *CLI) inspectCommand() *cobra.Command {
	opts := sessionOpts{miniMap: -1}

	cmd := &cobra.Command{
		Use:   "inspect [scene]",
		Short: "Play a scene and report editor events and final state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			s, err := play(ctx, args[0], opts)
			if err != nil {
				return err
			}
			defer s.Close()

			printReport(cmd.OutOrStdout(), s)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "style and input config (TOML or YAML)")
	cmd.Flags().Float64Var(&opts.miniMap, "minimap", opts.miniMap, "mini-map size as a canvas fraction, 0 to hide")

	return cmd
}

func printReport(w io.Writer, s *session) {
	rep := s.report
	name := s.scene.Name
	if name == "" {
		name = "scene"
	}
	fmt.Fprintln(w, StyleTitle.Render(name))
	printStats(w, len(s.scene.Nodes), len(rep.Links), rep.Frames)

	printKeyValue(w, "zoom", fmt.Sprintf("%.2f", rep.Zoom))
	printKeyValue(w, "panning", fmt.Sprintf("%.1f, %.1f", rep.Panning.X, rep.Panning.Y))
	printKeyValue(w, "nodes", formatIDs(rep.SelectedNodes))
	printKeyValue(w, "links", formatIDs(rep.SelectedLinks))

	for _, n := range s.scene.Nodes {
		pos := s.editor.NodeGridSpacePos(n.ID)
		dim := s.editor.NodeDimensions(n.ID)
		printInfo(w, "node %d %q at (%.0f, %.0f) size %.0fx%.0f", n.ID, n.Title, pos.X, pos.Y, dim.X, dim.Y)
	}
	for _, l := range rep.Links {
		printInfo(w, "link %d: %d -> %d", l.ID, l.From, l.To)
	}

	if len(rep.Events) == 0 {
		printInfo(w, "no events")
		return
	}
	fmt.Fprintln(w, StyleDim.Render("events"))
	for _, e := range rep.Events {
		printEvent(w, e)
	}
}
