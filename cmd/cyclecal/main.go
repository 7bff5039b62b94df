package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/cyclecal/internal/config"
	"github.com/username/cyclecal/internal/report"
)

var (
	configPath   string
	outputFormat string
	cfg          *config.Config
	stdout       io.Writer = os.Stdout
)

var logger = zap.NewNop()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cyclecal",
		Short:         "Weekday and month cycle facts",
		Long:          "List weekdays and months, shift them around their cycles, and time commands",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg = loaded

			if cfg.Log.File != "" {
				fileLogger, err := initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger(cfg.Log.Level) // Fallback to console
					logger.Warn("Failed to open log file, logging to stderr",
						zap.String("file", cfg.Log.File),
						zap.Error(err))
				} else {
					logger = fileLogger
				}
			} else {
				initLogger(cfg.Log.Level)
			}

			if cmd.Flags().Changed("output") {
				cfg.Output.Format = outputFormat
			}
			if _, err := report.ParseFormat(cfg.Output.Format); err != nil {
				return err
			}

			logger.Debug("Config loaded",
				zap.String("config", configPath),
				zap.Stringer("first_day", cfg.Week.FirstDay),
				zap.Stringer("first_month", cfg.Year.FirstMonth),
				zap.String("output", cfg.Output.Format))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: search ./config.yaml, $HOME/.cyclecal, /etc/cyclecal)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", string(report.FormatTable), "Output format: table, json or yaml")

	rootCmd.AddCommand(
		weekdaysCmd(),
		monthsCmd(),
		shiftCmd(),
		todayCmd(),
		pickCmd(),
		timeCmd(),
	)

	return rootCmd
}

func render(v any) error {
	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	return report.Render(stdout, format, v)
}

func initLogger(level string) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{"stderr"}
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	if logFile == "" {
		return nil, errors.New("log file path is empty")
	}

	// lumberjack opens the file on first write, check it up front
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	f.Close()

	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		parseLevel(level),
	)

	return zap.New(core), nil
}

func parseLevel(level string) zapcore.Level {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel
	}
	return zapLevel
}
