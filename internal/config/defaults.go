package config

const (
	defaultConfigPath   = "~/.config/savescout/config.toml"
	defaultTitleDBPath  = "~/.local/share/savescout/titles.db"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	projectConfigName   = "savescout.toml"
	debugEnvironmentKey = "SAVESCOUT_DEBUG"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Titles: Titles{
			DatabasePath: defaultTitleDBPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
