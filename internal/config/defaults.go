package config

const (
	defaultOutputDir      = "."
	defaultLogDir         = "~/.local/share/glyphgen/logs"
	defaultStateDir       = "~/.local/share/glyphgen/state"
	defaultMagickBinary   = "magick"
	defaultXelatexBinary  = "xelatex"
	defaultPangoDensity   = 600
	defaultPangoResize    = "25%"
	defaultXelatexDensity = 1200
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
			StateDir:  defaultStateDir,
		},
		Tools: Tools{
			Magick:  defaultMagickBinary,
			Xelatex: defaultXelatexBinary,
		},
		Render: Render{
			PangoDensity:   defaultPangoDensity,
			PangoResize:    defaultPangoResize,
			XelatexDensity: defaultXelatexDensity,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Manifest: Manifest{
			Enabled: true,
		},
	}
}
