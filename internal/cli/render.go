package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/nodes/backend"
	"github.com/gogpu/nodes/internal/config"
)

const defaultOutput = "graph.png"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	sessionOpts
	output string // PNG output path
	target string // backend target name, empty for the config or default
	watch  bool   // re-render when the scene or config changes
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		sessionOpts: sessionOpts{miniMap: -1},
		output:      defaultOutput,
	}

	cmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "Play a scene and render its last frame to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			if err := renderOnce(ctx, cmd.OutOrStdout(), args[0], opts); err != nil {
				return err
			}
			if !opts.watch {
				return nil
			}
			return watchAndRender(ctx, cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output PNG file")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "style and input config (TOML or YAML)")
	cmd.Flags().StringVarP(&opts.target, "target", "t", "", "render target: raster or recording")
	cmd.Flags().Float64Var(&opts.miniMap, "minimap", opts.miniMap, "mini-map size as a canvas fraction, 0 to hide")
	cmd.Flags().BoolVar(&opts.noMap, "no-minimap", false, "hide the mini-map")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "re-render when the scene or config file changes")

	return cmd
}

// renderOnce plays the scene at path and writes the PNG.
func renderOnce(ctx context.Context, w io.Writer, path string, opts renderOpts) error {
	s, err := play(ctx, path, opts.sessionOpts)
	if err != nil {
		return err
	}
	defer s.Close()

	name := opts.target
	if name == "" {
		name = s.cfg.Render.Target
	}
	if err := renderSession(s, name, opts.output); err != nil {
		return err
	}

	printSuccess(w, "Rendered %s", s.scene.Name)
	printStats(w, len(s.scene.Nodes), len(s.report.Links), s.report.Frames)
	printFile(w, opts.output)
	return nil
}

// watchAndRender re-renders on every change to the scene or config file
// until ctx is cancelled. Render failures are reported and watching goes on.
func watchAndRender(ctx context.Context, w io.Writer, path string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	watcher, err := config.NewWatcher(slog.New(logger), path, opts.config)
	if err != nil {
		return err
	}
	defer watcher.Close()

	printInfo(w, "Watching %s for changes (Ctrl+C to stop)", path)
	return watcher.Run(ctx, func(changed string) {
		logger.Info("Change detected", "path", changed)
		if err := renderOnce(ctx, w, path, opts); err != nil {
			printError(w, "Render failed: %v", err)
		}
	})
}

// renderSession replays the last frame of s into the named target and
// writes it to path.
func renderSession(s *session, name, path string) error {
	var (
		target backend.Target
		err    error
	)
	if name == "" {
		target = backend.Default()
		if target == nil {
			return backend.ErrTargetNotAvailable
		}
	} else if target, err = backend.Lookup(name); err != nil {
		return fmt.Errorf("%w: %q (available: %v)", err, name, backend.Available())
	}
	defer target.Close()

	if tt, ok := target.(backend.TextTarget); ok {
		tt.SetFace(s.face)
	}
	if err := target.Begin(s.cfg.Canvas.Width, s.cfg.Canvas.Height); err != nil {
		return err
	}
	if err := backend.Replay(target.Surface(), s.editor.DrawList()); err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	if err := target.End(); err != nil {
		return err
	}
	return target.SaveToFile(path)
}
