package logs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLogger(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "home")
	require.NoError(t, InitializeFileLogger(dir))
	logrus.Warn("something happened")
	CloseLogger()

	content, err := os.ReadFile(filepath.Join(dir, "logs.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "something happened")
	assert.Nil(t, Output)
}

func TestInitializeLevel(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	require.NoError(t, Initialize(logrus.TraceLevel, false))
	assert.Equal(t, logrus.TraceLevel, logrus.GetLevel())
	assert.Nil(t, Output)
}
