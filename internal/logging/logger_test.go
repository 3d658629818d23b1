package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"DEBUG", logrus.DebugLevel},
		{" info ", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"warning", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"fatal", logrus.FatalLevel},
		{"trace", logrus.TraceLevel},
		{"", logrus.WarnLevel},
		{"loud", logrus.WarnLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GetLevel(tt.in), "level %q", tt.in)
	}
}

func TestSetup_File(t *testing.T) {
	defer func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logrus.WarnLevel)
	}()

	path := filepath.Join(t.TempDir(), "ironflow")
	Setup(LoggerSetupParams{LogFileName: path, LogLevel: "info"})
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())

	logrus.Info("hello from the test")

	data, err := os.ReadFile(path + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from the test")
}
