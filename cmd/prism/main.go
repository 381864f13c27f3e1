// prism - flat-shaded software renderer for a cube and a subdivided tetrahedron.
// Writes a single image, or opens a terminal viewer with -interactive.
//
// Viewer controls:
//
//	Arrows/WASD - Turn the solid
//	+/-         - More/fewer subdivision rounds
//	C/P         - Cube/pyramid
//	X           - Toggle wireframe overlay
//	R           - Reset view
//	Q/Esc       - Quit
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/taigrr/prism/internal/config"
	"github.com/taigrr/prism/internal/logger"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "prism - flat-shaded software renderer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: prism [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nViewer controls (-interactive):\n")
		fmt.Fprintf(os.Stderr, "  Arrows/WASD - Turn the solid\n")
		fmt.Fprintf(os.Stderr, "  +/-         - More/fewer subdivision rounds\n")
		fmt.Fprintf(os.Stderr, "  C/P         - Cube/pyramid\n")
		fmt.Fprintf(os.Stderr, "  X           - Toggle wireframe\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset view\n")
		fmt.Fprintf(os.Stderr, "  Q/Esc       - Quit\n")
	}
	config.ParseFlags()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	opts := logger.Options{Level: cfg.Logging.Level}
	if cfg.Logging.LogFile != "" {
		opts.File = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	// The viewer owns the terminal, so it only logs to file
	if !cfg.Viewer.Interactive {
		opts.Console = os.Stderr
	}
	if err := logger.Init(opts); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	if path := config.SaveConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			return err
		}
		logger.Info("config saved", zap.String("path", path))
	}

	if cfg.Viewer.Interactive {
		return runViewer(cfg, logger.Named("viewer"))
	}
	return runHeadless(cfg, logger.Named("prism"))
}
