package wifi

import (
	"time"

	"github.com/evilsocket/wifiscan/models"
)

var DefaultTimeout = 30 * time.Second

// Command is an OS native tool listing the visible access points and the
// parser for its output.
type Command struct {
	Name  string
	Args  []string
	Parse func(output string) []models.AccessPoint
}

// Commands maps runtime.GOOS values to the tool used on that platform.
var Commands = map[string]Command{
	"windows": {
		Name:  "netsh",
		Args:  []string{"wlan", "show", "networks", "mode=bssid"},
		Parse: ParseNetsh,
	},
	"linux": {
		Name:  "nmcli",
		Args:  []string{"-t", "-f", "SSID,BSSID,SIGNAL,CHAN,SECURITY", "dev", "wifi"},
		Parse: ParseNmcli,
	},
}
