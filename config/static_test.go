package config

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	static, err := loadStaticConfig("")
	assert.Nil(t, err)
	assert.Equal(t, 2, static.Log.LogLevel)
	assert.Equal(t, "http://ip-api.com/json", static.Enrich.Endpoint)
	assert.Equal(t, 25, static.Enrich.BatchLimit)
	assert.Equal(t, "127.0.0.1:8310", static.Server.BindAddress)
	assert.Equal(t, 14, static.UserConfig.UpdateCheckFrequency)
}

func TestParseStaticConfig(t *testing.T) {
	testCfg := []byte(`
LogConfig:
  LogLevel: 0
Enrichment:
  Endpoint: http://localhost:9999/json
  TimeoutSeconds: 1
`)
	static, err := loadStaticConfig("")
	assert.Nil(t, err)

	err = parseStaticConfig(testCfg, static)
	assert.Nil(t, err)
	assert.Equal(t, 0, static.Log.LogLevel)
	assert.Equal(t, "http://localhost:9999/json", static.Enrich.Endpoint)
	// untouched keys keep their defaults
	assert.Equal(t, 25, static.Enrich.BatchLimit)
}

func TestExpandConfig(t *testing.T) {
	t.Setenv("WIRETALK_TEST_DIR", "/tmp/wiretalk-test")

	static, err := loadStaticConfig("")
	assert.Nil(t, err)
	static.Log.LogPath = "$WIRETALK_TEST_DIR/logs"

	expandConfig(reflect.ValueOf(static).Elem())
	assert.Equal(t, "/tmp/wiretalk-test/logs", static.Log.LogPath)
}

func TestLoadRunningConfig(t *testing.T) {
	static, err := loadStaticConfig("")
	assert.Nil(t, err)
	static.Version = "v1.2.3"

	running, err := loadRunningConfig(static)
	assert.Nil(t, err)
	assert.Equal(t, 5*time.Second, running.Enrich.Timeout)
	assert.Equal(t, uint64(1), running.Version.Major)

	static.Enrich.TimeoutSeconds = 0
	_, err = loadRunningConfig(static)
	assert.NotNil(t, err)
}

func TestLoadTestingConfig(t *testing.T) {
	conf, err := LoadTestingConfig()
	assert.Nil(t, err)
	assert.Equal(t, 3, conf.S.Log.LogLevel)
	assert.Equal(t, 5, conf.S.Enrich.BatchLimit)
	assert.Equal(t, 2*time.Second, conf.R.Enrich.Timeout)
}
