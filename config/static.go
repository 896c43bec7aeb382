package config

import (
	"io/ioutil"
	"os"
	"reflect"

	"github.com/creasty/defaults"
	yaml "gopkg.in/yaml.v2"
)

type (
	//StaticCfg is the container for other static config sections
	StaticCfg struct {
		Log          LogStaticCfg    `yaml:"LogConfig"`
		Parser       ParserStaticCfg `yaml:"Parser"`
		Enrich       EnrichStaticCfg `yaml:"Enrichment"`
		Server       ServerStaticCfg `yaml:"Server"`
		UserConfig   UserCfg         `yaml:"UserConfig"`
		Version      string
		ExactVersion string
	}

	//LogStaticCfg contains the configuration for logging
	LogStaticCfg struct {
		LogLevel  int    `yaml:"LogLevel" default:"2"`
		LogPath   string `yaml:"LogPath" default:"$HOME/.wiretalk/logs"`
		LogToFile bool   `yaml:"LogToFile" default:"false"`
	}

	//ParserStaticCfg controls the log text parser
	ParserStaticCfg struct {
		//MaxLines caps how many input lines are examined; 0 means
		//unbounded
		MaxLines int `yaml:"MaxLines" default:"0"`
	}

	//EnrichStaticCfg controls the endpoint enrichment lookups
	EnrichStaticCfg struct {
		Endpoint       string `yaml:"Endpoint" default:"http://ip-api.com/json"`
		TimeoutSeconds int    `yaml:"TimeoutSeconds" default:"5"`
		//BatchLimit caps the number of distinct identifiers resolved
		//per request to bound lookup fan-out
		BatchLimit int `yaml:"BatchLimit" default:"25"`
	}

	//ServerStaticCfg controls the HTTP API server
	ServerStaticCfg struct {
		BindAddress string `yaml:"BindAddress" default:"127.0.0.1:8310"`
	}

	//UserCfg holds user facing preferences
	UserCfg struct {
		//UpdateCheckFrequency is the number of days between update
		//checks; zero or negative disables the check
		UpdateCheckFrequency int `yaml:"UpdateCheckFrequency" default:"14"`
	}
)

//loadStaticConfig attempts to parse a static config file; an empty path
//yields the defaults
func loadStaticConfig(cfgPath string) (*StaticCfg, error) {
	config := new(StaticCfg)

	if err := defaults.Set(config); err != nil {
		return config, err
	}

	if cfgPath != "" {
		cfgFile, err := ioutil.ReadFile(cfgPath)
		if err != nil {
			return config, err
		}
		if err := parseStaticConfig(cfgFile, config); err != nil {
			return config, err
		}
	}

	// expand env variables, config is a pointer
	// so we have to call elem on the reflect value
	expandConfig(reflect.ValueOf(config).Elem())

	// grab the version constants set by the build process
	config.Version = Version
	config.ExactVersion = ExactVersion

	return config, nil
}

//parseStaticConfig loads the yaml from cfgFile into the provided config struct
func parseStaticConfig(cfgFile []byte, config *StaticCfg) error {
	return yaml.Unmarshal(cfgFile, config)
}

//expandConfig expands environment variables in config strings
func expandConfig(reflected reflect.Value) {
	for i := 0; i < reflected.NumField(); i++ {
		f := reflected.Field(i)
		// process sub configs
		if f.Kind() == reflect.Struct {
			expandConfig(f)
		} else if f.Kind() == reflect.String {
			f.SetString(os.ExpandEnv(f.String()))
		} else if f.Kind() == reflect.Slice && f.Type().Elem().Kind() == reflect.String {
			strs := f.Interface().([]string)
			for i, str := range strs {
				strs[i] = os.ExpandEnv(str)
			}
			f.Set(reflect.ValueOf(strs))
		}
	}
}
