package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/evilsocket/islazy/tui"
	"github.com/evilsocket/wifiscan/attack"
	"github.com/evilsocket/wifiscan/models"
	"github.com/evilsocket/wifiscan/wifi"
	"gopkg.in/yaml.v2"
)

var ErrUnsupportedFormat = errors.New("unsupported output format")

// same fallback rules as the api endpoints
func scanOnce(scanner *wifi.Scanner, simulate bool) []models.AccessPoint {
	networks := scanner.Scan()
	if len(networks) == 0 {
		if simulate {
			networks = models.AttackSamples()
		} else {
			networks = models.ScanSamples()
		}
	}

	if simulate {
		networks = attack.Simulate(networks)
	}
	return networks
}

func showNetworks(w io.Writer, networks []models.AccessPoint, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(networks)

	case "yaml":
		data, err := yaml.Marshal(networks)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err

	case "table":
		if len(networks) == 0 {
			_, err := fmt.Fprintln(w, tui.Dim("No networks found."))
			return err
		}

		columns := []string{"SSID", "BSSID", "Signal", "Channel", "Security", "Vendor", "Status"}
		rows := make([][]string, 0, len(networks))
		for _, ap := range networks {
			ssid := ap.SSID
			if ssid == "" {
				ssid = tui.Dim("<hidden>")
			}

			row := []string{
				ssid,
				ap.MAC,
				strconv.Itoa(ap.Signal),
				strconv.Itoa(ap.Channel),
				ap.Security,
				ap.Vendor,
				string(ap.Status),
			}
			if ap.IsThreat() {
				for i := range row {
					row[i] = tui.Bold(row[i])
				}
			}
			rows = append(rows, row)
		}

		tui.Table(w, columns, rows)
		return nil
	}

	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
}
