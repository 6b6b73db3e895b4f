package api

import (
	"net/http"

	"github.com/evilsocket/islazy/log"
	"github.com/evilsocket/wifiscan/attack"
	"github.com/evilsocket/wifiscan/models"
)

// scans with the lock held, falling back to the given samples if nothing is found
func (api *API) scanOr(samples func() []models.AccessPoint) []models.AccessPoint {
	networks := api.Scanner.Scan()
	if len(networks) == 0 {
		log.Debug("no networks found, using sample data")
		return samples()
	}
	return networks
}

// GET /api/scan
func (api *API) ScanNetworks(w http.ResponseWriter, r *http.Request) {
	api.Lock()
	defer api.Unlock()

	JSON(w, http.StatusOK, api.scanOr(models.ScanSamples))
}

// GET /api/simulate_attack
func (api *API) SimulateAttack(w http.ResponseWriter, r *http.Request) {
	api.Lock()
	defer api.Unlock()

	JSON(w, http.StatusOK, attack.Simulate(api.scanOr(models.AttackSamples)))
}
