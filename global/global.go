package global

import (
	"os"
	"path/filepath"

	"github.com/go-logr/zerologr"
	"github.com/nathanieltooley/pokemon-term/pokedex"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var initLogger zerolog.Logger

// GlobalInit loads the config from the default location and sets up the global logger.
// Problems are logged and the defaults are used, the CLI still runs without a config dir.
func GlobalInit(shouldLog bool) Config {
	configDir := DefaultConfigDir()

	// Basic logging for config debugging
	initLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !shouldLog {
		initLogger = zerolog.Nop()
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		initLogger.Err(err).Msg("error occurred trying to create config dir")
	}

	config, err := loadConfig(DefaultConfigLocation())
	if err != nil {
		initLogger.Err(err).Msg("error occurred while loading config, using defaults")
	}

	level := zerolog.InfoLevel
	if config.Debug {
		level = zerolog.DebugLevel
	}

	if shouldLog {
		log.Logger = createLogger(configDir, level)
	} else {
		log.Logger = zerolog.Nop()
	}

	pokedex.SetInternalLogger(zerologr.New(&log.Logger))

	log.Debug().Str("assets", config.AssetsDir).Str("language", config.Language).Msg("loaded config")

	return config
}

func createLogger(configDir string, level zerolog.Level) zerolog.Logger {
	rollingWriter, err := NewRollingFileWriter(filepath.Join(configDir, "logs"), AppName)
	if err != nil {
		initLogger.Err(err).Msg("could not open log file, logging is off")
		return zerolog.Nop()
	}

	fileWriter := zerolog.ConsoleWriter{Out: rollingWriter, NoColor: true}
	return zerolog.New(fileWriter).With().Timestamp().Caller().Logger().Level(level)
}

// StopLogging silences the global logger, used by tests.
func StopLogging() {
	log.Logger = zerolog.Nop()
	pokedex.SetInternalLogger(zerologr.New(&log.Logger))
}
