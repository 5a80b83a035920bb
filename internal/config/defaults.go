package config

const (
	defaultStartupDelayMS = 0
	defaultDelayMS        = 200
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultHistoryPath    = "~/.local/state/autostart-launcher/history.db"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Launch: Launch{
			StartupDelayMS: defaultStartupDelayMS,
			DelayMS:        defaultDelayMS,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		History: History{
			Enabled: false,
			Path:    defaultHistoryPath,
		},
	}
}
