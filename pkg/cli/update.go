package cli

import (
	"fmt"

	"github.com/blang/semver"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
)

// Version is overridden at build time via -ldflags.
var Version = "0.3.0"

const repoSlug = "tbruckner/xkcd-wallpaper"

// CheckForUpdates replaces the running binary with the latest GitHub
// release, if one is newer than the current version.
func CheckForUpdates() error {
	current, err := semver.Parse(Version)
	if err != nil {
		return fmt.Errorf("current version %q is not valid semver: %w", Version, err)
	}

	latest, err := selfupdate.UpdateSelf(current, repoSlug)
	if err != nil {
		return err
	}
	if latest.Version.Equals(current) {
		fmt.Printf("Already running the latest version (%s).\n", current)
		return nil
	}
	fmt.Printf("Updated to version %s.\n", latest.Version)
	if latest.ReleaseNotes != "" {
		fmt.Println(latest.ReleaseNotes)
	}
	return nil
}
