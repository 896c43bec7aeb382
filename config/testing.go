package config

// testConfig is a convenient source of valid settings for test cases
var testConfig = `
LogConfig:
  LogLevel: 3
  LogToFile: false
Parser:
  MaxLines: 0
Enrichment:
  Endpoint: http://ip-api.com/json
  TimeoutSeconds: 2
  BatchLimit: 5
Server:
  BindAddress: 127.0.0.1:8310
UserConfig:
  UpdateCheckFrequency: -1
`

//LoadTestingConfig loads the hard coded testing config
func LoadTestingConfig() (*Config, error) {
	config := new(Config)

	static, err := loadStaticConfig("")
	if err != nil {
		return config, err
	}
	if err := parseStaticConfig([]byte(testConfig), static); err != nil {
		return config, err
	}
	static.Version = "v0.0.0+testing"
	static.ExactVersion = "v0.0.0+testing"

	config.S = *static

	running, err := loadRunningConfig(static)
	if err != nil {
		return config, err
	}
	config.R = *running

	return config, nil
}
