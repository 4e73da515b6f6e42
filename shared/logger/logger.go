package logger

import (
	"io"
	"os"
	"time"

	"resort/config"

	"github.com/natefinch/lumberjack"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const envDevelopment = "development"

type stackTracer interface {
	StackTrace() errors.StackTrace
}

func console() io.Writer {
	return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
}

func isDevelopment(cfg *config.Config) bool {
	return cfg.Server.Env == "" || cfg.Server.Env == envDevelopment
}

// InitLogger installs a verbose console logger used until the config is
// loaded.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(console())
	log.Trace().Msg("Zerolog initialized.")
}

// Configure switches the global logger to JSON outside development and tees
// it into a rotating file when a log file path is set.
func Configure(cfg *config.Config) {
	stdout := io.Writer(os.Stdout)
	if isDevelopment(cfg) {
		stdout = console()
	}

	writers := []io.Writer{stdout}
	if sink := FileSink(cfg); sink != nil {
		writers = append(writers, sink)
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().
		Timestamp().
		Str("app", cfg.App.Name).
		Logger()

	SetLogLevel(cfg)
}

// FileSink returns the rotating file writer, nil when no path is configured.
func FileSink(cfg *config.Config) io.Writer {
	file := cfg.Server.LogFile
	if file.Path == "" {
		return nil
	}

	return &lumberjack.Logger{
		Filename:   file.Path,
		MaxSize:    file.MaxSizeMB,
		MaxBackups: file.MaxBackups,
		MaxAge:     file.MaxAgeDays,
		Compress:   true,
	}
}

// ErrorWithStack logs err with a stack trace. Errors that already carry one
// keep it instead of getting the caller's.
func ErrorWithStack(err error) {
	if err == nil {
		return
	}

	var traced stackTracer
	if !errors.As(err, &traced) {
		err = errors.WithStack(err)
	}

	log.Error().Msgf("%+v", err)
}

// SetLogLevel applies SERVER_LOG_LEVEL. Without a valid level development
// logs at debug and every other environment at info.
func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil || cfg.Server.LogLevel == "" {
		level = zerolog.InfoLevel
		if isDevelopment(cfg) {
			level = zerolog.DebugLevel
		}
	}

	zerolog.SetGlobalLevel(level)
	log.Debug().Str("loglevel", level.String()).Msg("Log level set.")
}
