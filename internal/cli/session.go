package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gogpu/gg/text"

	"github.com/gogpu/nodes"
	"github.com/gogpu/nodes/backend"
	"github.com/gogpu/nodes/geom"
	"github.com/gogpu/nodes/internal/config"
	"github.com/gogpu/nodes/internal/scene"
)

// sessionOpts are the flags shared by commands that play a scene.
type sessionOpts struct {
	config  string  // config file (TOML or YAML)
	miniMap float64 // mini-map fraction override, negative keeps the config
	noMap   bool    // disable the mini-map
}

// session is a scene played to its last frame.
type session struct {
	cfg    *config.Config
	scene  *scene.Scene
	editor *nodes.Context
	report *scene.Report
	face   text.Face
	src    *text.FontSource
}

func (s *session) Close() {
	if s.src != nil {
		s.src.Close()
	}
}

func (s *session) canvas() geom.Rect {
	return geom.R(0, 0, float64(s.cfg.Canvas.Width), float64(s.cfg.Canvas.Height))
}

// play loads the config and the scene at path and runs every frame.
func play(ctx context.Context, path string, opts sessionOpts) (*session, error) {
	logger := loggerFromContext(ctx)

	cfg, err := config.Load(opts.config)
	if err != nil {
		return nil, err
	}
	if opts.miniMap >= 0 {
		cfg.MiniMap.Enabled = opts.miniMap > 0
		if cfg.MiniMap.Enabled {
			cfg.MiniMap.Fraction = min(opts.miniMap, 1)
		}
	}
	if opts.noMap {
		cfg.MiniMap.Enabled = false
	}

	sc, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded scene", "path", path, "nodes", len(sc.Nodes), "links", len(sc.Links), "frames", sc.FrameCount())

	face, src, err := backend.LoadFace(cfg.Render.Font, cfg.Render.FontSize)
	if err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}
	s := &session{cfg: cfg, scene: sc, face: face, src: src}

	style, io := nodes.DefaultStyle(), nodes.DefaultIO()
	if err := cfg.Apply(&style, &io); err != nil {
		s.Close()
		return nil, err
	}
	s.editor = nodes.NewContext(
		nodes.WithStyle(style),
		nodes.WithIO(io),
		nodes.WithTextMeasurer(backend.NewFontMeasurer(face)),
	)
	s.editor.SetZoom(cfg.Canvas.Zoom, geom.Vec2{})

	r := scene.NewRunner(sc, s.editor, s.canvas())
	r.SetLogger(slog.New(logger))
	if cfg.MiniMap.Enabled {
		r.SetMiniMap(scene.MiniMap{Fraction: cfg.MiniMap.Fraction, Location: cfg.MiniMap.CornerLocation()})
	}

	prog := newProgress(logger)
	s.report, err = r.Run(ctx)
	if err != nil {
		s.Close()
		return nil, err
	}
	prog.done(fmt.Sprintf("Played %d frames", s.report.Frames))
	return s, nil
}
