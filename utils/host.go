package utils

import (
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/evilsocket/islazy/log"
)

func Hostname() string {
	name, err := os.Hostname()
	if err != nil {
		log.Warning("error getting hostname: %v", err)
		return ""
	}
	return strings.TrimSuffix(name, ".local")
}

// DashboardURL returns the URL the dashboard is reachable at when listening
// on address, wildcard hosts are replaced by the given hostname.
func DashboardURL(address, hostname string) string {
	host, port, err := net.SplitHostPort(address)
	if err != nil {
		return fmt.Sprintf("http://%s/", address)
	}

	if host == "" || host == "0.0.0.0" || host == "::" {
		host = hostname
		if host == "" {
			host = "localhost"
		}
	}

	return fmt.Sprintf("http://%s/", net.JoinHostPort(host, port))
}
