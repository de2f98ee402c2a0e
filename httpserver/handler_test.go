package httpserver

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruteri/wallet-provisioning-backend/interfaces"
	"github.com/ruteri/wallet-provisioning-backend/wallet"
)

func newTestHandler(mockCap *wallet.MockCapability) *Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(wallet.NewClient(mockCap, logger), logger)
}

func serveWalletAPI(handler *Handler, req *http.Request) *httptest.ResponseRecorder {
	mux := chi.NewRouter()
	mux.Get("/api/wallet/nyms", handler.HandleNyms)
	mux.Get("/api/wallet/nyms/{nym_id}", handler.HandleNymName)
	mux.Get("/api/wallet/accounts", handler.HandleAccounts)
	mux.Get("/api/wallet/servers", handler.HandleServers)
	mux.Get("/api/wallet/assets", handler.HandleAssets)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestHandleNyms(t *testing.T) {
	mockCap := new(wallet.MockCapability)
	mockCap.On("NymCount").Return(2)
	mockCap.On("NymID", 0).Return("nym-A")
	mockCap.On("NymID", 1).Return("nym-B")

	req := httptest.NewRequest(http.MethodGet, "/api/wallet/nyms", nil)
	w := serveWalletAPI(newTestHandler(mockCap), req)

	resp := w.Result()
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var ids []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ids))
	assert.Equal(t, []string{"nym-A", "nym-B"}, ids)
}

func TestHandleNyms_CorruptWallet(t *testing.T) {
	mockCap := new(wallet.MockCapability)
	mockCap.On("NymCount").Return(1)
	mockCap.On("NymID", 0).Return("")

	req := httptest.NewRequest(http.MethodGet, "/api/wallet/nyms", nil)
	w := serveWalletAPI(newTestHandler(mockCap), req)

	assert.Equal(t, http.StatusBadGateway, w.Result().StatusCode)
}

func TestHandleNymName(t *testing.T) {
	mockCap := new(wallet.MockCapability)
	mockCap.On("NymName", "nym-A").Return("alice")

	req := httptest.NewRequest(http.MethodGet, "/api/wallet/nyms/nym-A", nil)
	w := serveWalletAPI(newTestHandler(mockCap), req)

	resp := w.Result()
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reply NymNameResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&reply))
	assert.Equal(t, NymNameResponse{ID: "nym-A", Name: "alice"}, reply)
}

func TestHandleNymName_NotFound(t *testing.T) {
	mockCap := new(wallet.MockCapability)
	mockCap.On("NymName", "nym-unknown").Return("")

	req := httptest.NewRequest(http.MethodGet, "/api/wallet/nyms/nym-unknown", nil)
	w := serveWalletAPI(newTestHandler(mockCap), req)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandleAccounts(t *testing.T) {
	mockCap := new(wallet.MockCapability)
	mockCap.On("AccountCount").Return(2)
	mockCap.On("AccountID", 0).Return("acct-A")
	mockCap.On("AccountID", 1).Return("")

	req := httptest.NewRequest(http.MethodGet, "/api/wallet/accounts", nil)
	w := serveWalletAPI(newTestHandler(mockCap), req)

	resp := w.Result()
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Empty entries are preserved in the listing.
	var ids []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ids))
	assert.Equal(t, []string{"acct-A", ""}, ids)
}

func TestHandleServers(t *testing.T) {
	mockCap := new(wallet.MockCapability)
	mockCap.On("ServerCount").Return(1)
	mockCap.On("ServerID", 0).Return("srv-A")
	mockCap.On("ServerName", "srv-A").Return("transactions-A")

	req := httptest.NewRequest(http.MethodGet, "/api/wallet/servers", nil)
	w := serveWalletAPI(newTestHandler(mockCap), req)

	resp := w.Result()
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var servers []interfaces.ServerDescriptor
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&servers))
	assert.Equal(t, []interfaces.ServerDescriptor{{ID: "srv-A", Name: "transactions-A"}}, servers)
}

func TestHandleAssets(t *testing.T) {
	mockCap := new(wallet.MockCapability)
	mockCap.On("AssetTypeCount").Return(1)
	mockCap.On("AssetTypeID", 0).Return("asset-A")
	mockCap.On("AssetTypeName", "asset-A").Return("silver grams")

	req := httptest.NewRequest(http.MethodGet, "/api/wallet/assets", nil)
	w := serveWalletAPI(newTestHandler(mockCap), req)

	resp := w.Result()
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var assets []interfaces.AssetDescriptor
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&assets))
	assert.Equal(t, []interfaces.AssetDescriptor{{ID: "asset-A", Name: "silver grams"}}, assets)
}
