package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"pokerhand-evaluator/internal/util"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("PHE_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("PHE_DEAL_PLAYERS", "4")
	defer clear2()

	config = Config{}

	a := assert.New(t)
	cfg := Instance()
	a.Equal("debug", cfg.Log.Level)
	a.Equal("json", cfg.Log.Format)
	a.Equal(":8080", cfg.Server.Addr)
	a.Equal([]string{"https://example.com"}, cfg.Server.AllowedOrigins)
	a.Equal(int64(42), cfg.Deal.Seed)
	a.Equal(4, cfg.Deal.Players)

	// ensure that it's only loaded once
	_ = os.Setenv("PHE_DEAL_PLAYERS", "5")
	// ensure we aren't using a pointer
	cfg.Deal.Players = 9
	cfg = Instance()
	a.Equal(4, cfg.Deal.Players)
}

func TestDefaults(t *testing.T) {
	clear1 := util.SetEnv("PHE_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear1()

	assert.NoError(t, Load())
	cfg := Instance()
	expected := DefaultConfig()
	expected.loaded = true
	assert.Equal(t, expected, cfg)
	assert.Equal(t, ":5000", cfg.Server.Addr)
	assert.Equal(t, 2, cfg.Deal.Players)
}

func TestLoad_badEnv(t *testing.T) {
	clear1 := util.SetEnv("PHE_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear1()
	clear2 := util.SetEnv("PHE_DEAL_SEED", "not-a-number")
	defer clear2()

	assert.Error(t, Load())
}
