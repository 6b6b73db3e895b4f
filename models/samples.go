package models

var scanSamples = []AccessPoint{
	{
		SSID:     "CafeFreeWiFi",
		MAC:      "A4:56:02:3F:8C:71",
		Signal:   85,
		Channel:  6,
		Security: "WPA2",
		Vendor:   "Cisco",
		Status:   StatusSafe,
	},
	{
		SSID:     "Airport_Guest",
		MAC:      "B8:27:EB:D5:A1:9C",
		Signal:   72,
		Channel:  11,
		Security: "Open",
		Vendor:   "TP-Link",
		Status:   StatusSafe,
	},
	{
		SSID:     "Library_Public",
		MAC:      "9C:5C:8E:12:F3:A7",
		Signal:   65,
		Channel:  1,
		Security: "WPA2",
		Vendor:   "Netgear",
		Status:   StatusSafe,
	},
}

var evilTwins = []AccessPoint{
	{
		SSID:     "CafeFreeWiFi",
		MAC:      "00:0C:42:1F:AB:39",
		Signal:   95,
		Channel:  6,
		Security: "Open",
		Vendor:   Unknown,
		Status:   StatusDanger,
		Reason:   "Duplicate SSID with different MAC and unusually high signal strength",
	},
	{
		SSID:     "Airport_Guest",
		MAC:      "A4:56:02:AA:BB:CC",
		Signal:   68,
		Channel:  11,
		Security: "WEP",
		Vendor:   "Mismatch",
		Status:   StatusWarning,
		Reason:   "SSID matches known network but security protocol is weaker than expected",
	},
}

func clone(list []AccessPoint, n int) []AccessPoint {
	out := make([]AccessPoint, n)
	copy(out, list[:n])
	return out
}

// ScanSamples is served by the scan endpoint when no network was found.
func ScanSamples() []AccessPoint {
	return clone(scanSamples, len(scanSamples))
}

// AttackSamples is the base list of the attack simulation when no network was found.
func AttackSamples() []AccessPoint {
	return clone(scanSamples, 2)
}

func EvilTwins() []AccessPoint {
	return clone(evilTwins, len(evilTwins))
}
