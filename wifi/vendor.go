package wifi

import (
	"net"

	"github.com/evilsocket/wifiscan/models"
	"github.com/google/gopacket/macs"
)

// LookupVendor resolves the manufacturer of a BSSID from its OUI prefix.
func LookupVendor(mac string) string {
	hw, err := net.ParseMAC(mac)
	if err != nil || len(hw) < 3 {
		return models.Unknown
	}

	var prefix [3]byte
	copy(prefix[:], hw[:3])

	if vendor, found := macs.ValidMACPrefixMap[prefix]; found {
		return vendor
	}
	return models.Unknown
}
