package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/evilsocket/islazy/log"
	"github.com/evilsocket/wifiscan/models"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/docgen"
)

// Scanner returns the access points currently visible, an empty list means
// either nothing was found or the scan failed.
type Scanner interface {
	Scan() []models.AccessPoint
}

type API struct {
	// held for the whole scan and response
	sync.Mutex

	Router  *chi.Mux
	Scanner Scanner
}

func Setup(scanner Scanner) *API {
	api := &API{
		Router:  chi.NewRouter(),
		Scanner: scanner,
	}

	api.Router.Use(logged)
	api.Router.Use(CORS)
	api.setupRoutes()

	return api
}

func (api *API) setupRoutes() {
	log.Debug("registering api ...")

	// GET /
	api.Router.Get("/", api.Index)
	// GET /static/<file>
	api.Router.Get("/static/*", cached(600, staticHandler()))

	api.Router.Route("/api", func(r chi.Router) {
		r.Use(middleware.DefaultCompress)
		// GET /api/scan
		r.Get("/scan", api.ScanNetworks)
		// GET /api/simulate_attack
		r.Get("/simulate_attack", api.SimulateAttack)
	})
}

// RoutesDoc renders the markdown documentation of the registered routes.
func (api *API) RoutesDoc() string {
	return docgen.MarkdownRoutesDoc(api.Router, docgen.MarkdownOpts{
		ProjectPath: "github.com/evilsocket/wifiscan",
		Intro:       "wifiscan HTTP API.",
	})
}

func (api *API) Run(addr string) {
	log.Info("wifiscan api starting on %s ...", addr)
	server := &http.Server{
		Addr:              addr,
		Handler:           api.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Fatal("%v", server.ListenAndServe())
}
