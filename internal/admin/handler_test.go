package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"cryptofx/internal/market"
	"cryptofx/internal/user"
	"cryptofx/internal/wallet"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func newTestHandler(t *testing.T) (*Handler, *market.Store) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)
	marketStore := market.NewStore(nil)
	walletSvc := wallet.NewService(wallet.NewStore(), user.NewStore(), nil, log)
	return NewHandler(walletSvc, marketStore, testSecret, string(hash), log), marketStore
}

func loginToken(t *testing.T, h *Handler) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"username": "ops", "password": "hunter22"})
	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/v1/admin/login", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])
	return resp["token"]
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	h, _ := newTestHandler(t)

	body, _ := json.Marshal(map[string]string{"username": "ops", "password": "wrong"})
	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/v1/admin/login", bytes.NewReader(body)))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware(t *testing.T) {
	h, _ := newTestHandler(t)
	token := loginToken(t, h)

	next := AuthMiddleware(testSecret)(http.HandlerFunc(h.Me))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	next.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "ops", resp["username"])
	require.Equal(t, "admin", resp["role"])

	rec = httptest.NewRecorder()
	next.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/admin/me", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/v1/admin/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	next.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func settleRequest(id string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/transactions/"+id+"/approve", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestApproveFlipsPendingTransaction(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.Approve(rec, settleRequest("2"))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "completed", resp["status"])

	rec = httptest.NewRecorder()
	h.Approve(rec, settleRequest("2"))
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = httptest.NewRecorder()
	h.Reject(rec, settleRequest("missing"))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddInstrument(t *testing.T) {
	h, marketStore := newTestHandler(t)

	body, _ := json.Marshal(map[string]any{
		"name":   "Avalanche",
		"symbol": "avax",
		"icon":   "AVAX",
		"price":  "1250.40",
	})
	rec := httptest.NewRecorder()
	h.AddInstrument(rec, httptest.NewRequest(http.MethodPost, "/v1/admin/instruments", bytes.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	inst, err := marketStore.GetInstrument("avalanche")
	require.NoError(t, err)
	require.Equal(t, "AVAX", inst.Symbol)
	require.Equal(t, "1250.4", inst.Price.String())
}

func TestAddInstrumentRequiresNameAndSymbol(t *testing.T) {
	h, _ := newTestHandler(t)

	body, _ := json.Marshal(map[string]any{"name": "", "symbol": ""})
	rec := httptest.NewRecorder()
	h.AddInstrument(rec, httptest.NewRequest(http.MethodPost, "/v1/admin/instruments", bytes.NewReader(body)))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStats(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.Stats(rec, httptest.NewRequest(http.MethodGet, "/v1/admin/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp statsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 12547, resp.TotalUsers)
	require.Equal(t, "15.85B", resp.TotalVolumeDisplay)
}
