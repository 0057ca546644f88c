package runner

import (
	"github.com/projectdiscovery/gologger"
)

var banner = (`
     __      __       __
 ___/  |_  _/  |_  ____\ \_____  ____  ______  _____    ____
/ __ \   __\ \   __\/ __ \\__  \ / ___\ \____ \ \__  \ _/ ___\
\  ___/|  |    |  | \  ___/ / __ \  \___|  |_> > / __ \\  \___
 \___  >__|    |__|  \___  >____  /\___  >   __/ (____  /\___  >
     \/                  \/     \/     \/|__|         \/     \/
`)

var version = "v0.1.0"

// showBanner prints the runner's banner once at startup.
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tstatespace %s\n\n", version)
}
