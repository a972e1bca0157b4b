package main

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/bittube/tube-params/consensus/params"
	"github.com/bittube/tube-params/consensus/tube"
	"github.com/bittube/tube-params/consensus/utils"
	"github.com/bittube/tube-params/openalias"
	"github.com/bittube/tube-params/views"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

const aliasLookupTimeout = 5 * time.Second

type AliasResolver interface {
	Lookup(ctx context.Context, name string) ([]openalias.Record, error)
}

// API serves one immutable parameter set. Every body except OpenAlias
// lookups is rendered when the API is built.
type API struct {
	router   *mux.Router
	registry *params.Registry
	aliases  AliasResolver

	health   []byte
	params   []byte
	networks [tube.NetworkCount][]byte
	configJS []byte
}

type healthResponse struct {
	Status  string           `json:"status"`
	Coin    string           `json:"coin"`
	Network tube.NetworkType `json:"nettype"`
	Source  string           `json:"source"`
}

func NewAPI(registry *params.Registry, source string, aliases AliasResolver) (*API, error) {
	s := registry.Get()
	a := &API{
		router:   mux.NewRouter(),
		registry: registry,
		aliases:  aliases,
	}

	var err error
	if a.health, err = utils.MarshalJSON(healthResponse{Status: "ok", Coin: s.CoinSymbol, Network: s.NetworkType, Source: source}); err != nil {
		return nil, err
	}
	if a.params, err = params.ToJSON(s); err != nil {
		return nil, err
	}
	for _, n := range tube.Networks {
		derived, err := registry.WithNetwork(n)
		if err != nil {
			return nil, errors.Wrapf(err, "deriving %s parameters", n)
		}
		if a.networks[n], err = params.ToJSON(derived.Get()); err != nil {
			return nil, err
		}
	}
	a.configJS = []byte(views.ConfigJS(&views.ConfigContext{Params: s, Source: source}))

	a.registerRoutes()
	return a, nil
}

func (a *API) registerRoutes() {
	a.router.Use(corsMiddleware)

	a.router.HandleFunc("/api/health", a.handleHealth).Methods("GET", "OPTIONS")
	a.router.HandleFunc("/api/params", a.handleParams).Methods("GET", "OPTIONS")
	a.router.HandleFunc("/api/params/{network}", a.handleNetworkParams).Methods("GET", "OPTIONS")
	a.router.HandleFunc("/api/openalias/{name}", a.handleOpenAlias).Methods("GET", "OPTIONS")

	// Served to the wallet front-end in place of the static file.
	a.router.HandleFunc("/config.js", a.handleConfigJS).Methods("GET", "OPTIONS")

	a.router.HandleFunc("/explorer/tx/{id}", a.handleExplorerTx).Methods("GET", "OPTIONS")
	a.router.HandleFunc("/explorer/block/{height}", a.handleExplorerBlock).Methods("GET", "OPTIONS")
}

func (a *API) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (a *API) writeJSON(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

func (a *API) writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = utils.NewJSONEncoder(w).Encode(map[string]string{"error": msg})
}

// GET /api/health
func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, a.health)
}

// GET /api/params
func (a *API) handleParams(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, a.params)
}

// GET /api/params/{network} - same set with another network selected
func (a *API) handleNetworkParams(w http.ResponseWriter, r *http.Request) {
	n, err := tube.ParseNetworkType(mux.Vars(r)["network"])
	if err != nil {
		a.writeError(w, http.StatusNotFound, "Unknown network")
		return
	}
	a.writeJSON(w, a.networks[n])
}

// GET /api/openalias/{name}
func (a *API) handleOpenAlias(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	ctx, cancel := context.WithTimeout(r.Context(), aliasLookupTimeout)
	defer cancel()

	records, err := a.aliases.Lookup(ctx, name)
	if err != nil {
		if errors.Is(err, openalias.ErrNoRecords) {
			a.writeError(w, http.StatusNotFound, "No OpenAlias record")
			return
		}
		utils.Errorf("API", "OpenAlias lookup of %s failed: %s", name, err)
		a.writeError(w, http.StatusBadGateway, "OpenAlias lookup failed")
		return
	}

	body, err := utils.MarshalJSON(records)
	if err != nil {
		a.writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}
	a.writeJSON(w, body)
}

// GET /config.js
func (a *API) handleConfigJS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(a.configJS)
}

// GET /explorer/tx/{id}
func (a *API) handleExplorerTx(w http.ResponseWriter, r *http.Request) {
	link, err := a.registry.Get().ExplorerTxURL(mux.Vars(r)["id"])
	if err != nil {
		a.writeError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}
	http.Redirect(w, r, link, http.StatusFound)
}

// GET /explorer/block/{height}
func (a *API) handleExplorerBlock(w http.ResponseWriter, r *http.Request) {
	height, err := strconv.ParseUint(mux.Vars(r)["height"], 10, 64)
	if err != nil {
		a.writeError(w, http.StatusBadRequest, "Invalid height")
		return
	}
	link, err := a.registry.Get().ExplorerBlockURL(height)
	if err != nil {
		a.writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}
	http.Redirect(w, r, link, http.StatusFound)
}
