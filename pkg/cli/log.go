package cli

import (
	"log"
	"os"
)

var verbose bool

// setVerbose enables info-level progress lines. The XKCD_WALLPAPER_LOG
// environment variable turns them on too, mirroring the -v flag.
func setVerbose(v bool) {
	verbose = v || os.Getenv("XKCD_WALLPAPER_LOG") != ""
	log.SetFlags(0)
	log.SetPrefix("xkcd-wallpaper: ")
}

func infof(format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}
