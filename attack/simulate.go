// Package attack stages an evil twin attack on top of a list of networks
// to show what spoofed access points look like to the user.
package attack

import "github.com/evilsocket/wifiscan/models"

// Simulate returns a new list with the networks followed by the spoofed
// access points. The input is left untouched.
func Simulate(networks []models.AccessPoint) []models.AccessPoint {
	twins := models.EvilTwins()
	out := make([]models.AccessPoint, 0, len(networks)+len(twins))
	out = append(out, networks...)
	return append(out, twins...)
}
