package config

import (
	"fmt"
	"time"

	"github.com/blang/semver"
)

type (
	//RunningCfg holds values parsed from the static config
	RunningCfg struct {
		Enrich  EnrichRunningCfg
		Version semver.Version
	}

	//EnrichRunningCfg holds parsed enrichment settings
	EnrichRunningCfg struct {
		Timeout time.Duration
	}
)

//loadRunningConfig derives parsed values from the static config
func loadRunningConfig(config *StaticCfg) (*RunningCfg, error) {
	var err error
	running := new(RunningCfg)

	if config.Enrich.TimeoutSeconds <= 0 {
		return running, fmt.Errorf("enrichment timeout must be positive, got %d", config.Enrich.TimeoutSeconds)
	}
	running.Enrich.Timeout = time.Duration(config.Enrich.TimeoutSeconds) * time.Second

	running.Version, err = semver.ParseTolerant(config.Version)
	if err != nil {
		fmt.Println("\t[!] Failed to parse version information")
	}

	return running, err
}
