package resources

import (
	"testing"

	"github.com/redwire/wiretalk/config"
)

//InitTestingResources creates a default testing resource bundle
//backed by the hard coded testing config.
func InitTestingResources(t *testing.T) *Resources {
	conf, err := config.LoadTestingConfig()
	if err != nil {
		t.Fatal(err)
	}

	// Fire up the logging system
	log := initLogger(&conf.S.Log)

	//bundle up the system resources
	r := &Resources{
		Config: conf,
		Log:    log,
	}
	return r
}
