package wifi

import (
	"strconv"
	"strings"

	"github.com/evilsocket/islazy/str"
	"github.com/evilsocket/wifiscan/models"
)

type netshParser struct {
	networks []models.AccessPoint
	seen     map[string]bool

	ssid      string
	hasSSID   bool
	security  string
	bssid     string
	signal    int
	hasSignal bool
	channel   int
}

// emits the current BSSID block, if complete, and resets it
func (p *netshParser) flush() {
	if p.hasSSID && p.bssid != "" && p.hasSignal {
		key := strings.ToLower(p.bssid)
		if !p.seen[key] {
			p.seen[key] = true
			p.networks = append(p.networks, models.NewAccessPoint(p.ssid, p.bssid, p.signal, p.channel, p.security))
		}
	}

	p.bssid = ""
	p.signal = 0
	p.hasSignal = false
	p.channel = 0
}

func (p *netshParser) feed(line string) {
	key, value, found := strings.Cut(line, ":")
	if !found {
		return
	}

	key = str.Trim(key)
	value = str.Trim(value)

	switch {
	case strings.HasPrefix(key, "BSSID"):
		p.flush()
		p.bssid = value
	case strings.HasPrefix(key, "SSID"):
		p.flush()
		p.ssid = value
		p.hasSSID = true
		p.security = ""
	case key == "Signal":
		p.signal = atoiOr(strings.TrimSuffix(value, "%"), 0)
		p.hasSignal = true
	case key == "Channel":
		p.channel = atoiOr(value, 1)
	case key == "Authentication":
		p.security = value
	}
}

// ParseNetsh parses the output of "netsh wlan show networks mode=bssid".
// Every BSSID block becomes a record once SSID, BSSID and signal are known,
// duplicated BSSIDs are only reported the first time.
func ParseNetsh(output string) []models.AccessPoint {
	p := &netshParser{
		networks: make([]models.AccessPoint, 0),
		seen:     make(map[string]bool),
	}

	for _, line := range strings.Split(output, "\n") {
		p.feed(str.Trim(line))
	}
	p.flush()

	return p.networks
}

func atoiOr(s string, def int) int {
	if n, err := strconv.Atoi(str.Trim(s)); err == nil {
		return n
	}
	return def
}
