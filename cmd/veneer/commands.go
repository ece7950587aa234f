package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"veneer/internal/config"
	"veneer/internal/metrics"
	"veneer/internal/palette"
	"veneer/internal/render"
	"veneer/internal/ui"
)

// session is the state shared by every subcommand of one invocation
type session struct {
	cfg *config.Config
	run *metrics.Run
}

// newFlagSet registers the flags every subcommand accepts on top of cfg
func newFlagSet(name string, cfg *config.Config) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.PaletteFile, "palette", cfg.PaletteFile, "palette TOML file")
	fs.StringVar(&cfg.MetricsFile, "metrics", cfg.MetricsFile, "write run metrics to this textfile")
	level := fs.String("log-level", cfg.LogLevel.String(), "debug, info or quiet")
	return fs, level
}

// start validates cfg and prepares logging and metrics
func start(cfg *config.Config, level string) (*session, error) {
	cfg.LogLevel = config.LogLevel(strings.ToLower(level))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ui.SetLevel(ui.ParseLevel(cfg.LogLevel.String()))
	return &session{cfg: cfg, run: metrics.NewRun()}, nil
}

// finish writes metrics, if configured, whatever the outcome of the command
func (s *session) finish(err error) error {
	if s.cfg.MetricsFile == "" {
		return err
	}
	if werr := s.run.WriteTextfile(s.cfg.MetricsFile); werr != nil {
		return errors.Join(err, fmt.Errorf("writing metrics %s: %w", s.cfg.MetricsFile, werr))
	}
	ui.LogDebug("metrics written to %s", s.cfg.MetricsFile)
	return err
}

// resolve loads, validates and resolves the configured palette
func (s *session) resolve() (*palette.ResolvedPalette, error) {
	p, undecoded, err := palette.Load(s.cfg.PaletteFile)
	if err != nil {
		return nil, err
	}
	for _, key := range undecoded {
		ui.LogStatus("warning", "ignoring unknown palette key: "+key)
	}

	rp, stats, err := palette.ResolveWithStats(p)
	if err != nil {
		return nil, err
	}
	for _, sec := range p.Sections() {
		s.run.ObserveSection(sec.Base, len(sec.Keys))
	}
	s.run.ObserveLookups(stats.Lookups)
	ui.LogDebug("resolved %d slots with %d lookups from %s", stats.Slots, stats.Lookups, s.cfg.PaletteFile)
	return rp, nil
}

func (s *session) render(templates []string, dest string, opts render.Options) error {
	rp, err := s.resolve()
	if err != nil {
		return err
	}
	outcomes, err := render.Build(render.NewContext(rp), templates, dest, opts)
	for _, o := range outcomes {
		s.run.ObserveTemplate(string(o.Result))
		ui.LogTemplate(string(o.Result), o.Template, o.Output)
	}
	if err != nil {
		s.run.ObserveTemplate(string(render.Failed))
		return err
	}
	return nil
}

func cmdBuild(args []string) error {
	cfg := config.Load()
	fs, level := newFlagSet("build", cfg)
	fs.StringVar(&cfg.TemplateExt, "ext", cfg.TemplateExt, "template suffix stripped from output names")
	fs.BoolVar(&cfg.ForceWrite, "force", cfg.ForceWrite, "rewrite outputs even when unchanged")
	if err := fs.Parse(args); err != nil {
		return err
	}
	templates, dest, err := splitBuildArgs(fs.Args(), cfg.TemplateExt)
	if err != nil {
		return err
	}

	s, err := start(cfg, *level)
	if err != nil {
		return err
	}
	return s.finish(s.render(templates, dest, render.Options{Ext: cfg.TemplateExt, Force: cfg.ForceWrite}))
}

func cmdCheck(args []string) error {
	cfg := config.Load()
	fs, level := newFlagSet("check", cfg)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("check requires at least one template")
	}

	s, err := start(cfg, *level)
	if err != nil {
		return err
	}
	return s.finish(s.render(fs.Args(), "", render.Options{Ext: cfg.TemplateExt, Check: true}))
}

func cmdShow(args []string) error {
	cfg := config.Load()
	fs, level := newFlagSet("show", cfg)
	borderName := fs.String("border", "none", "table borders: none, unicode or ascii")
	if err := fs.Parse(args); err != nil {
		return err
	}

	border, err := ui.ParseBorder(*borderName)
	if err != nil {
		return err
	}

	s, err := start(cfg, *level)
	if err != nil {
		return err
	}
	rp, err := s.resolve()
	if err != nil {
		return s.finish(err)
	}
	ui.PrintSummary(os.Stdout, cfg.PaletteFile, rp, border)
	return s.finish(nil)
}

func cmdResolve(args []string) error {
	cfg := config.Load()
	fs, level := newFlagSet("resolve", cfg)
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := start(cfg, *level)
	if err != nil {
		return err
	}
	rp, err := s.resolve()
	if err != nil {
		return s.finish(err)
	}
	out, err := palette.Encode(rp)
	if err != nil {
		return s.finish(err)
	}
	_, err = os.Stdout.Write(out)
	return s.finish(err)
}

// splitBuildArgs separates templates from the optional destination.
// With two arguments the second is the destination unless it is an existing
// template file; with more, the last is the destination only when it is an
// existing directory.
func splitBuildArgs(args []string, ext string) (templates []string, dest string, err error) {
	switch {
	case len(args) == 0:
		return nil, "", fmt.Errorf("build requires at least one template")
	case len(args) == 1:
		return args, "", nil
	case len(args) == 2:
		last := args[1]
		if isTemplateFile(last, ext) {
			return args, "", nil
		}
		return args[:1], last, nil
	}
	last := args[len(args)-1]
	if render.IsDir(last) {
		return args[:len(args)-1], last, nil
	}
	return args, "", nil
}

func isTemplateFile(path, ext string) bool {
	if ext == "" || !strings.HasSuffix(path, ext) {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
