package config

const (
	defaultLogDir      = "~/.local/share/stuckscan/logs"
	defaultStuckGlob   = "stuck/**/*.json"
	defaultUnstuckGlob = "unstuck/**/*.json"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Corpus: Corpus{
			StuckGlob:   defaultStuckGlob,
			UnstuckGlob: defaultUnstuckGlob,
		},
		Scan: Scan{
			Window:    0, // window must come from the flag unless configured
			Threshold: 0,
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
