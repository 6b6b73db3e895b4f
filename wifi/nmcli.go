package wifi

import (
	"strings"

	"github.com/evilsocket/wifiscan/models"
)

const nmcliFields = 5

// nmcli terse mode separates fields with ':' and escapes ':' and '\'
// inside values with a backslash.
func splitTerse(line string) []string {
	fields := make([]string, 0, nmcliFields)
	field := strings.Builder{}
	escaped := false

	for _, r := range line {
		switch {
		case escaped:
			field.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ':':
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}

	return append(fields, field.String())
}

func nmcliSecurity(security string) string {
	if security == "" || security == "--" {
		return "Open"
	}
	return security
}

// ParseNmcli parses the output of "nmcli -t -f SSID,BSSID,SIGNAL,CHAN,SECURITY dev wifi",
// one access point per line.
func ParseNmcli(output string) []models.AccessPoint {
	networks := make([]models.AccessPoint, 0)
	seen := make(map[string]bool)

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}

		parts := splitTerse(line)
		if len(parts) < nmcliFields {
			continue
		}

		ssid, bssid, signal, channel, security := parts[0], parts[1], parts[2], parts[3], parts[4]
		key := strings.ToLower(bssid)
		if seen[key] {
			continue
		}
		seen[key] = true

		networks = append(networks, models.NewAccessPoint(
			ssid,
			bssid,
			atoiOr(signal, 0),
			atoiOr(channel, 1),
			nmcliSecurity(security)))
	}

	return networks
}
