package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/evilsocket/wifiscan/models"
	"github.com/evilsocket/wifiscan/wifi"
	"gopkg.in/yaml.v2"
)

func scannerWith(output string, err error) *wifi.Scanner {
	return wifi.NewScanner(
		wifi.WithOS("linux"),
		wifi.WithRunner(func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return []byte(output), err
		}))
}

func TestScanOnce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		output   string
		err      error
		simulate bool
		want     int
	}{
		{name: "scan", output: "Net:aa-bb-cc-dd-ee-01:80:6:WPA2\n", want: 1},
		{name: "scan with attack", output: "Net:aa-bb-cc-dd-ee-01:80:6:WPA2\n", simulate: true, want: 3},
		{name: "empty scan", want: 3},
		{name: "empty scan with attack", simulate: true, want: 4},
		{name: "failed scan", err: errors.New("boom"), want: 3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := scanOnce(scannerWith(tt.output, tt.err), tt.simulate); len(got) != tt.want {
				t.Errorf("expected %d networks, got %d", tt.want, len(got))
			}
		})
	}
}

func TestShowNetworks(t *testing.T) {
	t.Parallel()

	networks := models.ScanSamples()

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		buf := bytes.Buffer{}
		if err := showNetworks(&buf, networks, "json"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var decoded []models.AccessPoint
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(decoded) != len(networks) || decoded[0] != networks[0] {
			t.Errorf("unexpected output %s", buf.String())
		}
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		buf := bytes.Buffer{}
		if err := showNetworks(&buf, networks, "yaml"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var decoded []models.AccessPoint
		if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(decoded) != len(networks) || decoded[2] != networks[2] {
			t.Errorf("unexpected output %s", buf.String())
		}
	})

	t.Run("table", func(t *testing.T) {
		t.Parallel()
		buf := bytes.Buffer{}
		if err := showNetworks(&buf, networks, "table"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, ap := range networks {
			if !strings.Contains(buf.String(), ap.SSID) {
				t.Errorf("expected %s in the table", ap.SSID)
			}
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		t.Parallel()
		err := showNetworks(&bytes.Buffer{}, networks, "xml")
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("expected ErrUnsupportedFormat, got %v", err)
		}
	})
}

func TestFailedScanOutputIsParseable(t *testing.T) {
	t.Parallel()

	scanner := scannerWith("", errors.New(`exec: "nmcli": executable file not found in $PATH`))

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		buf := bytes.Buffer{}
		if err := showNetworks(&buf, scanOnce(scanner, false), "json"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var decoded []models.AccessPoint
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("expected clean json, got %v: %s", err, buf.String())
		}
		if len(decoded) != 3 {
			t.Errorf("expected 3 sample networks, got %d", len(decoded))
		}
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		buf := bytes.Buffer{}
		if err := showNetworks(&buf, scanOnce(scanner, true), "yaml"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var decoded []models.AccessPoint
		if err := yaml.UnmarshalStrict(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("expected clean yaml, got %v: %s", err, buf.String())
		}
		if len(decoded) != 4 {
			t.Errorf("expected 4 networks, got %d", len(decoded))
		}
	})

	t.Run("logs stay off stdout", func(t *testing.T) {
		t.Parallel()
		for _, format := range []string{"json", "yaml"} {
			if output, silenced := logOutput(true, format, "", "linux"); output == "" && !silenced {
				t.Errorf("expected %s logs to be moved off stdout", format)
			}
		}
	})
}
