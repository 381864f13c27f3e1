package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile     = flag.String("log-file", "", "Write logs to this file")
	flagShape       = flag.String("shape", "", "Solid to render: cube or pyramid")
	flagRounds      = flag.Int("rounds", 0, "Pyramid subdivision rounds")
	flagHorizontal  = flag.Float64("horizontal", 0, "Horizontal angle in degrees")
	flagVertical    = flag.Float64("vertical", 0, "Vertical angle in degrees")
	flagWidth       = flag.Int("width", 0, "Image width in pixels")
	flagHeight      = flag.Int("height", 0, "Image height in pixels")
	flagBackground  = flag.String("background", "", "Background color as hex")
	flagWireframe   = flag.Bool("wireframe", false, "Draw triangle edges over the fill")
	flagOut         = flag.String("out", "", "Output image (.png, .jpg, .bmp, .tif)")
	flagScale       = flag.Int("scale", 0, "Output pixel upscale factor")
	flagExportMesh  = flag.String("export-mesh", "", "Also write the mesh as .glb")
	flagInteractive = flag.Bool("interactive", false, "Open the terminal viewer")
	flagSaveConfig  = flag.String("save-config", "", "Write the effective config to this path")
)

// explicit records the flags given on the command line. Angles and rounds
// have meaningful zero values, so presence rather than value decides.
var explicit = map[string]bool{}

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
	explicit = map[string]bool{}
	flag.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
	})
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// SaveConfigPath returns the -save-config destination, if any.
func SaveConfigPath() string {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if explicit["log-file"] {
		cfg.Logging.LogFile = *flagLogFile
	}
	if explicit["shape"] {
		cfg.Render.Shape = *flagShape
	}
	if explicit["rounds"] {
		cfg.Render.Rounds = *flagRounds
	}
	if explicit["horizontal"] {
		cfg.Render.Horizontal = *flagHorizontal
	}
	if explicit["vertical"] {
		cfg.Render.Vertical = *flagVertical
	}
	if *flagWidth > 0 {
		cfg.Render.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Render.Height = *flagHeight
	}
	if explicit["background"] {
		cfg.Render.Background = *flagBackground
	}
	if explicit["wireframe"] {
		cfg.Render.Wireframe = *flagWireframe
	}
	if explicit["out"] {
		cfg.Output.Path = *flagOut
	}
	if *flagScale > 0 {
		cfg.Output.Scale = *flagScale
	}
	if explicit["export-mesh"] {
		cfg.Output.MeshPath = *flagExportMesh
	}
	if explicit["interactive"] {
		cfg.Viewer.Interactive = *flagInteractive
	}
}
