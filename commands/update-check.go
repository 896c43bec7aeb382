package commands

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/blang/semver"
	"github.com/google/go-github/github"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/redwire/wiretalk/config"
	"github.com/redwire/wiretalk/resources"
)

//Strings used for informing the user of a new version.
var informFmtStr string = "\nTheres a new %s version of WireTalk %s available at:\nhttps://github.com/redwire/wiretalk/releases\n"
var versions = []string{"Major", "Minor", "Patch"}

func GetVersionPrinter() func(*cli.Context) {
	return func(c *cli.Context) {
		fmt.Printf("%s version %s\n", c.App.Name, c.App.Version)
		fmt.Print(updateCheck(c.String("config")))
	}
}

// updateCheck performs a check for the new version of WireTalk against the
// git repository and returns a string indicating the new version if available
func updateCheck(configFile string) string {
	res := resources.InitResources(configFile)
	delta := res.Config.S.UserConfig.UpdateCheckFrequency
	var newVersion semver.Version
	var err error

	if delta <= 0 {
		return ""
	}

	timestamp, newVersion := lastCheck()

	days := time.Now().Sub(timestamp).Hours() / 24

	if days > float64(delta) {
		newVersion, err = getRemoteVersion()

		if err != nil {
			return ""
		}

		recordCheck(newVersion)

		res.Log.WithFields(log.Fields{
			"Message":         "Checking versions...",
			"LastUpdateCheck": time.Now(),
			"NewestVersion":   fmt.Sprint(newVersion),
		}).Info("Checking for new version")
	}

	configVersion, err := semver.ParseTolerant(config.Version)
	if err != nil {
		return ""
	}

	if newVersion.GT(configVersion) {
		return informUser(configVersion, newVersion)
	}

	return ""
}

//checkStampPath locates the file which records the last update check
func checkStampPath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, "wiretalk", "last-update-check"), nil
}

//lastCheck reads the timestamp and version recorded by the previous check
func lastCheck() (time.Time, semver.Version) {
	stampPath, err := checkStampPath()
	if err != nil {
		return time.Time{}, semver.Version{}
	}

	contents, err := ioutil.ReadFile(stampPath)
	if err != nil {
		return time.Time{}, semver.Version{}
	}

	fields := strings.Fields(string(contents))
	if len(fields) != 2 {
		return time.Time{}, semver.Version{}
	}

	timestamp, err := time.Parse(time.RFC3339, fields[0])
	if err != nil {
		return time.Time{}, semver.Version{}
	}
	version, err := semver.ParseTolerant(fields[1])
	if err != nil {
		return timestamp, semver.Version{}
	}
	return timestamp, version
}

//recordCheck writes the timestamp and version of a completed check
func recordCheck(version semver.Version) {
	stampPath, err := checkStampPath()
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(stampPath), 0755); err != nil {
		return
	}
	contents := fmt.Sprintf("%s %s\n", time.Now().Format(time.RFC3339), version)
	ioutil.WriteFile(stampPath, []byte(contents), 0644)
}

// Returns the first index where v1 is greater than v2
func versionDiffIndex(v1 semver.Version, v2 semver.Version) int {
	if v1.Major > v2.Major {
		return 0
	}
	if v1.Minor > v2.Minor {
		return 1
	}
	return 2
}

func getRemoteVersion() (semver.Version, error) {
	client := github.NewClient(nil)
	refs, _, err := client.Git.GetRefs(context.Background(), "redwire", "wiretalk", "refs/tags/v")

	if err == nil {
		s := strings.TrimPrefix(*refs[len(refs)-1].Ref, "refs/tags/")
		return semver.ParseTolerant(s)
	}
	return semver.Version{}, err
}

// Assembles a notice for the user informing them of an upgrade.
// The return value is printed regardless so, "" is returned on errror.
func informUser(local semver.Version, remote semver.Version) string {
	return fmt.Sprintf(informFmtStr,
		versions[versionDiffIndex(remote, local)],
		fmt.Sprint(remote))
}
