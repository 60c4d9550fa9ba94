package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/nyancat/audio"
	"github.com/lixenwraith/nyancat/clierrors"
	"github.com/lixenwraith/nyancat/config"
	"github.com/lixenwraith/nyancat/logging"
	"github.com/lixenwraith/nyancat/profile"
	"github.com/lixenwraith/nyancat/render"
	"github.com/lixenwraith/nyancat/service"
	"github.com/lixenwraith/nyancat/sprite"
	"github.com/lixenwraith/nyancat/terminal"
	"github.com/lixenwraith/nyancat/viewport"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nyancat",
		Short: "Nyancat in your terminal, rendered with ANSI escapes",
		Long: `Animates the rainbow-trailed cat in the terminal.

The color palette is chosen from TERM and the animation is cropped to the
window, following resizes. Press Ctrl+C to stop.`,
		Example: `  nyancat
  nyancat -n -f 60
  nyancat -W 40 -H 20 --mute`,
		Version:       version,
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNyancat(cmd.Context(), cmd, cmd.OutOrStdout())
		},
	}

	config.RegisterFlags(rootCmd.Flags())

	// Wrap Cobra's raw flag errors in CLIError so they get styled output
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &clierrors.CLIError{
			Message: err.Error(),
			Hint:    fmt.Sprintf("Run '%s --help' for available flags", cmd.CommandPath()),
			Code:    clierrors.ExitUsage,
		}
	})

	return rootCmd
}

// noArgs rejects positional arguments with a usage error
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return &clierrors.CLIError{
			Message: fmt.Sprintf("'%s' accepts no arguments", cmd.CommandPath()),
			Hint:    fmt.Sprintf("Run '%s --help' for usage", cmd.CommandPath()),
			Code:    clierrors.ExitUsage,
		}
	}
	return nil
}

// session holds everything resolved before the render loop starts
type session struct {
	cfg     *config.Config
	logger  *slog.Logger
	profile profile.Profile
	size    viewport.Size
	store   *sprite.Store
}

// prepare loads configuration, logging, frames and the terminal profile.
// The returned cleanup is never nil.
func prepare(cmd *cobra.Command, fd int) (*session, func() error, error) {
	noop := func() error { return nil }

	path, _ := cmd.Flags().GetString(config.KeyConfig)
	if path == "" {
		path = os.Getenv("NYANCAT_CONFIG")
	}
	cfg, err := config.Load(cmd.Flags(), path)
	if err != nil {
		return nil, noop, clierrors.InvalidConfig(err)
	}

	logger, cleanup, err := logging.New(logging.Config{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return nil, noop, clierrors.InvalidLogging(err)
	}

	store, err := sprite.Default()
	if err != nil {
		return nil, cleanup, clierrors.CorruptAsset(err)
	}

	cols, rows, err := terminal.Size(fd)
	if err != nil {
		logger.Debug("window size unavailable, using fallback", "error", err)
		cols, rows = 0, 0
	}
	if !terminal.IsTerminal(fd) {
		logger.Info("stdout is not a terminal")
	}

	termName := os.Getenv("TERM")
	p := profile.Resolve(termName, cols)
	logger.Info("terminal resolved",
		"term", termName, "profile", p.Class.String(),
		"cols", cols, "rows", rows, "config", cfg.File)

	return &session{
		cfg:     cfg,
		logger:  logger,
		profile: p,
		size:    viewport.Size{Cols: cols, Rows: rows},
		store:   store,
	}, cleanup, nil
}

// runNyancat renders until interrupted or the frame limit is reached
func runNyancat(ctx context.Context, cmd *cobra.Command, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	fd := int(os.Stdout.Fd())

	s, cleanup, err := prepare(cmd, fd)
	defer cleanup()
	if err != nil {
		return err
	}

	player := audio.NewPlayer(s.cfg.Audio())
	watcher := terminal.NewWatcher(fd)

	hub := service.NewHub(s.logger)
	hub.Register(player, true)
	hub.Register(watcher, false)
	if err := hub.StartAll(); err != nil {
		return err
	}
	defer hub.StopAll()
	s.logger.Info("services running", "services", hub.Running(),
		"audio", player.Enabled(), "volume", s.cfg.Volume)

	engine := render.New(terminal.NewOutput(out), s.profile, s.store, s.size, render.Options{
		Counter:    s.cfg.Counter,
		Clear:      s.cfg.Clear,
		FrameLimit: s.cfg.Frames,
		Crop:       viewport.Crop{Width: s.cfg.Width, Height: s.cfg.Height},
	}, s.logger)

	err = engine.Run(ctx, watcher.Events())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
