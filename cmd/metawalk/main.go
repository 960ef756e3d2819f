// SPDX-License-Identifier: MIT

// Command metawalk runs metapath-constrained random walks described by a YAML
// config and writes the corpus, one walk per line, to stdout.
//
//	metawalk -config run.yaml -seed 42 -workers 4 > corpus.txt
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/metawalk/config"
	"github.com/katalvlaran/metawalk/walk"
)

// unset marks -seed / -workers as "keep the config value".
const unset = -1

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without process globals; it returns the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("metawalk", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "YAML run configuration (required)")
	seed := fs.Int64("seed", unset, "RNG seed; overrides walk.seed (-1 keeps the config value)")
	workers := fs.Int("workers", unset, "parallel workers; overrides walk.workers (-1 keeps the config value)")
	verbose := fs.Bool("verbose", false, "log at debug level")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "[metawalk]")
		fmt.Fprintln(stderr, "\tMetapath-constrained random walks over a labeled graph")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options Description:")
		fs.PrintDefaults()
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Usage:")
		fmt.Fprintln(stderr, "./metawalk -config run.yaml -seed 42 -workers 4 > corpus.txt")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *cfgPath == "" {
		fs.Usage()
		return 2
	}

	log := newLogger(stderr, *verbose)
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Error("load config", zap.String("path", *cfgPath), zap.Error(err))
		return 1
	}
	if *seed != unset {
		s := *seed
		cfg.Walk.Seed = &s
	}
	if *workers != unset {
		cfg.Walk.Workers = *workers
	}

	g, err := cfg.BuildGraph()
	if err != nil {
		log.Error("build graph", zap.Error(err))
		return 1
	}
	stats := g.Stats()
	log.Info("graph ready",
		zap.Int("vertices", stats.VertexCount),
		zap.Int("edges", stats.EdgeCount),
		zap.Int("self_loops", stats.SelfLoopCount),
		zap.Strings("labels", g.Labels()),
	)

	w, err := walk.NewWalker(g, walk.WithLogger(log), walk.WithWorkers(cfg.Walk.Workers))
	if err != nil {
		log.Error("create walker", zap.Error(err))
		return 1
	}
	walks, err := w.RunContext(ctx, cfg.Roots(g), cfg.Walk.N, cfg.Walk.Length, cfg.Metapaths(), cfg.Walk.Seed)
	if err != nil {
		log.Error("run walks", zap.Error(err))
		return 1
	}
	if err = walk.WriteCorpus(stdout, walks); err != nil {
		log.Error("write corpus", zap.Error(err))
		return 1
	}
	log.Info("corpus written", zap.Int("walks", len(walks)))

	return 0
}

// newLogger returns a console logger on w, at debug level when verbose.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	})

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level))
}
