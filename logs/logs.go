package logs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/cube2222/octovalue/config"
)

var Output io.WriteCloser

// Initialize sets the global log level and, with toFile, sends logs to
// logs.txt in the octovalue home directory instead of stderr.
func Initialize(level logrus.Level, toFile bool) error {
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: !toFile,
	})
	if !toFile {
		return nil
	}
	return InitializeFileLogger(config.OctovalueHomeDir)
}

func InitializeFileLogger(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "couldn't create %s directory", dir)
	}
	f, err := os.Create(filepath.Join(dir, "logs.txt"))
	if err != nil {
		return errors.Wrap(err, "couldn't create logs file")
	}
	Output = f
	logrus.SetOutput(Output)
	return nil
}

func CloseLogger() {
	if Output == nil {
		return
	}
	logrus.SetOutput(os.Stderr)
	Output.Close()
	Output = nil
}
