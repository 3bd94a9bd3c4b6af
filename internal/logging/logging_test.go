package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pokerhand-evaluator/internal/config"
)

func Test_formatter(t *testing.T) {
	assert.IsType(t, &logrus.JSONFormatter{}, formatter("json", true))
	assert.IsType(t, &logrus.JSONFormatter{}, formatter("JSON", false))
	assert.IsType(t, &logrus.TextFormatter{}, formatter("text", false))
	assert.IsType(t, &logrus.TextFormatter{}, formatter("", true))
	assert.IsType(t, &logrus.JSONFormatter{}, formatter("", false))
}

func TestSetup(t *testing.T) {
	a := assert.New(t)
	defer func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logrus.InfoLevel)
		logrus.SetFormatter(&logrus.TextFormatter{})
	}()

	out, err := os.Create(filepath.Join(t.TempDir(), "log.json"))
	require.NoError(t, err)
	defer out.Close()

	cfg := config.DefaultConfig()
	cfg.Log.Level = "debug"
	a.NoError(Setup(cfg, out))
	a.Equal(logrus.DebugLevel, logrus.GetLevel())
	a.IsType(&logrus.JSONFormatter{}, logrus.StandardLogger().Formatter, "a file is not a terminal")

	logrus.WithField("category", "Pair").Debug("evaluated")
	b, err := os.ReadFile(out.Name())
	require.NoError(t, err)
	a.Contains(string(b), `"category":"Pair"`)

	cfg.Log.Level = "loud"
	a.Error(Setup(cfg, out))
}
