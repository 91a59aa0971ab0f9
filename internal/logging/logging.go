package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/kibi-sigz/zed-f9p-gnss-viewer/internal/config"
)

// Setup configures the global logger from cfg. The returned function releases
// the log file handle when file output is enabled and must be called before
// the process exits.
func Setup(cfg config.LoggingConfig) (func(), error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %s: %w", cfg.Level, err)
	}

	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: cfg.TimestampFormat,
	})

	if !cfg.FileEnabled {
		log.SetOutput(os.Stdout)
		return func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	file, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	log.SetOutput(io.MultiWriter(os.Stdout, file))

	return func() {
		log.SetOutput(os.Stdout)
		if err := file.Close(); err != nil {
			log.WithFields(log.Fields{
				"component": "logging",
				"error":     err,
			}).Error("log file close failed")
		}
	}, nil
}
