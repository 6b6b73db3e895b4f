package models

const Unknown = "Unknown"

type Status string

const (
	StatusSafe    Status = "safe"
	StatusWarning Status = "warning"
	StatusDanger  Status = "danger"
)

type AccessPoint struct {
	SSID     string `json:"ssid" yaml:"ssid"`
	MAC      string `json:"mac" yaml:"mac"`
	Signal   int    `json:"signal" yaml:"signal"`
	Channel  int    `json:"channel" yaml:"channel"`
	Security string `json:"security" yaml:"security"`
	Vendor   string `json:"vendor" yaml:"vendor"`
	Status   Status `json:"status" yaml:"status"`
	// only set for simulated threats
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// NewAccessPoint returns a scanned access point with the placeholder fields
// filled in, channel 1 is used when the tool didn't report a valid one.
func NewAccessPoint(ssid, mac string, signal, channel int, security string) AccessPoint {
	if channel <= 0 {
		channel = 1
	}
	if security == "" {
		security = Unknown
	}
	return AccessPoint{
		SSID:     ssid,
		MAC:      mac,
		Signal:   signal,
		Channel:  channel,
		Security: security,
		Vendor:   Unknown,
		Status:   StatusSafe,
	}
}

func (ap AccessPoint) IsThreat() bool {
	return ap.Status == StatusWarning || ap.Status == StatusDanger
}
