// catv - print vector and matrix calculations in the terminal.
//
// Every matrix in the config is printed with its transpose, determinant,
// inverse and (for 4x4) cofactor matrix. Every vector is printed with its
// length and direction. A glTF file adds one world transform per node.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/taigrr/catv/internal/config"
	"github.com/taigrr/catv/internal/logging"
	"github.com/taigrr/catv/pkg/scene"
)

var (
	configPath = flag.String("config", "", "Path to a TOML config (default: built-in sample)")
	gltfPath   = flag.String("gltf", "", "Path to a glTF/GLB file whose node transforms are printed")
	easeFrames = flag.Int("ease", 0, "Print a spring blend from identity over n frames (0 disables)")
	targetFPS  = flag.Int("fps", 60, "Frame rate of the -ease blend")
	watch      = flag.Bool("watch", false, "Re-run whenever the config file changes")
	colorize   = flag.Bool("color", false, "Style entries with ANSI colors")
	logLevel   = flag.String("log-level", "", "Log level: debug, info, warn, error (default: config value)")
)

type options struct {
	configPath string
	gltfPath   string
	ease       int
	fps        int
	watch      bool
	color      bool
	logLevel   string
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "catv - vector and matrix calculator\n\n")
		fmt.Fprintf(os.Stderr, "Usage: catv [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	opts := options{
		configPath: *configPath,
		gltfPath:   *gltfPath,
		ease:       *easeFrames,
		fps:        *targetFPS,
		watch:      *watch,
		color:      *colorize,
		logLevel:   *logLevel,
	}

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	logger := logging.New(os.Stderr, opts.logLevel)
	if err := run(ctx, opts, os.Stdout, logger); err != nil {
		logger.Error("catv failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, w io.Writer, logger *log.Logger) error {
	if opts.watch {
		if opts.configPath == "" {
			logger.Warn("-watch needs -config, running once")
		} else {
			return watchConfig(ctx, opts, w, logger)
		}
	}
	return runOnce(opts, w, logger)
}

func runOnce(opts options, w io.Writer, logger *log.Logger) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	// An explicit -log-level wins over the config file.
	if opts.logLevel == "" {
		if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
			logger.SetLevel(lvl)
		}
	}
	logger.Debug("config loaded",
		"path", opts.configPath,
		"matrices", len(cfg.Matrices),
		"vectors", len(cfg.Vectors))

	r := &reporter{
		w:      w,
		styled: opts.color,
		ease:   opts.ease,
		fps:    opts.fps,
		log:    logger,
	}
	r.config(cfg)

	if opts.gltfPath != "" {
		ts, err := scene.Load(opts.gltfPath)
		if err != nil {
			return err
		}
		logger.Debug("scene loaded", "path", opts.gltfPath, "nodes", len(ts))
		r.scene(ts)
	}
	return r.err
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
