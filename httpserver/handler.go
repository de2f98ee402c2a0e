package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ruteri/wallet-provisioning-backend/interfaces"
	"github.com/ruteri/wallet-provisioning-backend/metrics"
	"github.com/ruteri/wallet-provisioning-backend/wallet"
)

// Handler serves read-only wallet queries over HTTP. It holds the process's
// wallet client; because the underlying capability is not reentrant, the
// server must be run with the understanding that concurrent requests
// serialize on local wallet state that is cheap to read.
type Handler struct {
	client *wallet.Client
	log    *slog.Logger
}

// NewHandler creates a wallet query handler.
func NewHandler(client *wallet.Client, log *slog.Logger) *Handler {
	return &Handler{
		client: client,
		log:    log,
	}
}

// NymNameResponse is the response for a single nym lookup.
type NymNameResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, endpoint string, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Error("Failed to encode response", "err", err, "endpoint", endpoint)
	}
	metrics.WalletQueries.WithLabelValues(endpoint, "ok").Inc()
}

func (h *Handler) writeError(w http.ResponseWriter, endpoint string, err error) {
	h.log.Error("Wallet query failed", "err", err, "endpoint", endpoint)

	status := http.StatusInternalServerError
	var sentinelErr *interfaces.SentinelReturnError
	if errors.As(err, &sentinelErr) {
		// The capability reported failure for a specific entry; the wallet
		// state itself is suspect, not the request.
		status = http.StatusBadGateway
	}

	http.Error(w, err.Error(), status)
	metrics.WalletQueries.WithLabelValues(endpoint, "error").Inc()
}

// HandleNyms returns the ids of all locally stored nyms.
//
// URL format: GET /api/wallet/nyms
func (h *Handler) HandleNyms(w http.ResponseWriter, r *http.Request) {
	ids, err := h.client.NymIDs()
	if err != nil {
		h.writeError(w, "nyms", err)
		return
	}
	h.writeJSON(w, "nyms", ids)
}

// HandleNymName returns the display name for one nym.
//
// URL format: GET /api/wallet/nyms/{nym_id}
//
// A 404 here is ambiguous between "nym not found" and "nym has no name"; the
// underlying capability cannot tell the two apart.
func (h *Handler) HandleNymName(w http.ResponseWriter, r *http.Request) {
	nymID := r.PathValue("nym_id")

	name, err := h.client.NymName(nymID)
	if err != nil {
		var sentinelErr *interfaces.SentinelReturnError
		if errors.As(err, &sentinelErr) {
			http.Error(w, "nym not found or unnamed", http.StatusNotFound)
			metrics.WalletQueries.WithLabelValues("nym_name", "not_found").Inc()
			return
		}
		h.writeError(w, "nym_name", err)
		return
	}

	h.writeJSON(w, "nym_name", NymNameResponse{ID: nymID, Name: name})
}

// HandleAccounts returns the ids of all asset accounts. Empty entries are
// preserved, mirroring the capability's enumeration contract.
//
// URL format: GET /api/wallet/accounts
func (h *Handler) HandleAccounts(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, "accounts", h.client.AccountIDs())
}

// HandleServers returns (id, name) descriptors for all known servers.
//
// URL format: GET /api/wallet/servers
func (h *Handler) HandleServers(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, "servers", h.client.Servers())
}

// HandleAssets returns (id, name) descriptors for all known asset types.
//
// URL format: GET /api/wallet/assets
func (h *Handler) HandleAssets(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, "assets", h.client.Assets())
}
