package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"pacman/config"
	"pacman/experiments"
	"pacman/maze"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	layoutName  string
	metricsAddr string
	seed        uint64
	games       int
	concurrency int
	out         string
	sweep       bool

	cfg config.Config

	rootCmd = &cobra.Command{
		Use:               "pacman",
		Short:             "A maze agent that plans against adversaries it cannot fully see",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Play one session and log every move",
		RunE:  runSession,
	}

	experimentCmd = &cobra.Command{
		Use:   "experiment [name]",
		Short: "Play a batch of sessions and store the records as CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExperiment,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML or JSON config file")
	rootCmd.PersistentFlags().StringVarP(&layoutName, "layout", "l", "small",
		"Builtin layout ("+strings.Join(maze.Builtins(), ", ")+") or a layout file")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Seed for jitter and nature (overrides the config)")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :2112")

	experimentCmd.Flags().IntVar(&games, "games", 0, "Sessions per agent (overrides the config)")
	experimentCmd.Flags().IntVar(&concurrency, "concurrency", 0, "Sessions played at once (overrides the config)")
	experimentCmd.Flags().StringVar(&out, "out", "", "Directory for the records (overrides the config)")
	experimentCmd.Flags().BoolVar(&sweep, "sweep-depth", false, "Compare every search depth up to the configured one")

	rootCmd.AddCommand(runCmd, experimentCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		loaded.Seed = seed
	}
	if games > 0 {
		loaded.Experiment.Games = games
	}
	if concurrency > 0 {
		loaded.Experiment.Concurrency = concurrency
	}
	if out != "" {
		loaded.Experiment.Out = out
	}
	cfg = loaded
	zerolog.SetGlobalLevel(cfg.Level())

	if metricsAddr != "" {
		serveMetrics(metricsAddr)
	}
	return nil
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server stopped")
		}
	}()
	log.Info().Msgf("serving metrics on %s/metrics", addr)
}

func runSession(cmd *cobra.Command, args []string) error {
	layout, err := maze.Layout(layoutName)
	if err != nil {
		return err
	}

	game, moves, err := experiments.Play(cfg, layoutName, layout, cfg.Seed)
	if err != nil {
		return err
	}

	var path strings.Builder
	for _, m := range moves {
		path.WriteString(m.Action.String()[:1])
	}
	fmt.Printf("session %s: %d ticks, score %d, lives %d, cleared %t\n", game.Session, game.Ticks, game.Score, game.Lives, game.Cleared)
	fmt.Printf("moves: %s\n", path.String())
	return nil
}

func runExperiment(cmd *cobra.Command, args []string) error {
	layout, err := maze.Layout(layoutName)
	if err != nil {
		return err
	}

	name := "baseline"
	agents := experiments.Baseline(cfg)
	if sweep {
		name = "depth_sweep"
		agents = experiments.DepthSweep(cfg)
	}
	if len(args) > 0 {
		name = args[0]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dir, err := experiments.Run(ctx, cfg, name, layout, agents)
	if err != nil {
		return err
	}
	log.Info().Msgf("stored %s results in %s", name, dir)
	return nil
}
