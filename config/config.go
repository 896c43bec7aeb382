package config

import (
	"os/user"
	"path/filepath"

	"github.com/redwire/wiretalk/util"
)

//Version is filled at compile time with the git version of WireTalk
var Version = "undefined"

//ExactVersion is filled at compile time with the git version of WireTalk
var ExactVersion = "undefined"

type (
	//Config holds the configuration for the running system
	Config struct {
		R RunningCfg
		S StaticCfg
	}
)

//userConfigPath is the per-user config location relative to the homedir
const userConfigPath = ".wiretalk/config.yaml"

//systemConfigPath is the fallback system wide config location
const systemConfigPath = "/etc/wiretalk/config.yaml"

//LoadConfig loads the configuration in order of precedence: an explicitly
//given path, the user's config, then the system config. A missing config
//file is not an error; the defaults are used instead.
func LoadConfig(userConfig string) (*Config, error) {
	if userConfig != "" {
		return loadSystemConfig(userConfig)
	}

	if currUser, err := user.Current(); err == nil {
		path := filepath.Join(currUser.HomeDir, userConfigPath)
		if util.Exists(path) {
			return loadSystemConfig(path)
		}
	}

	if util.Exists(systemConfigPath) {
		return loadSystemConfig(systemConfigPath)
	}

	// no config file anywhere; run on defaults
	return loadSystemConfig("")
}

//loadSystemConfig attempts to parse a config file
func loadSystemConfig(cfgPath string) (*Config, error) {
	config := new(Config)

	static, err := loadStaticConfig(cfgPath)
	if err != nil {
		return config, err
	}
	config.S = *static

	running, err := loadRunningConfig(static)
	if err != nil {
		return config, err
	}
	config.R = *running

	return config, nil
}
