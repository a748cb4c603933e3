package payman

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendorfund-dev/vendorfund/internal/model"
)

func newTestServer(t *testing.T, sendStatus int, sendBody string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc(authPath, func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		if payload["clientId"] != "id" || payload["clientSecret"] != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"accessToken": "tok"})
	})
	mux.HandleFunc(sendPath, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.WriteHeader(sendStatus)
		_, _ = w.Write([]byte(sendBody))
	})
	return httptest.NewServer(mux)
}

func TestSubmitPayment_Success(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"status":"completed","id":"txn_1"}`)
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL, ClientID: "id", ClientSecret: "secret"})
	res := c.SubmitPayment(context.Background(), "payee_1", decimal.NewFromInt(37), "memo", "TSD")
	assert.Equal(t, model.OutcomeSuccess, res.Outcome)
	assert.Equal(t, "txn_1", res.TransactionID)
}

func TestSubmitPayment_Rejected(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"status":"rejected","message":"payee blocked"}`)
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL, ClientID: "id", ClientSecret: "secret"})
	res := c.SubmitPayment(context.Background(), "payee_1", decimal.NewFromInt(37), "memo", "TSD")
	assert.Equal(t, model.OutcomeRejected, res.Outcome)
	assert.Equal(t, "payee blocked", res.Reason)
}

func TestSubmitPayment_HTTPError(t *testing.T) {
	srv := newTestServer(t, http.StatusBadRequest, `{"error":"invalid payee"}`)
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL, ClientID: "id", ClientSecret: "secret"})
	res := c.SubmitPayment(context.Background(), "payee_1", decimal.NewFromInt(37), "memo", "TSD")
	assert.Equal(t, model.OutcomeRejected, res.Outcome)
	assert.Contains(t, res.Reason, "status 400")
}

func TestSubmitPayment_AuthFailure(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{}`)
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL, ClientID: "wrong", ClientSecret: "creds"})
	res := c.SubmitPayment(context.Background(), "payee_1", decimal.NewFromInt(37), "memo", "TSD")
	assert.Equal(t, model.OutcomeTransportError, res.Outcome)
	assert.Contains(t, res.Reason, "authenticate")
}

func TestSubmitPayment_Unreachable(t *testing.T) {
	c := NewClient(Options{BaseURL: "http://127.0.0.1:1", ClientID: "id", ClientSecret: "secret"})
	res := c.SubmitPayment(context.Background(), "payee_1", decimal.NewFromInt(37), "memo", "TSD")
	assert.Equal(t, model.OutcomeTransportError, res.Outcome)
}

func TestAuthenticate(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{}`)
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL, ClientID: "id", ClientSecret: "secret"})
	tok, err := c.Authenticate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok", tok)
}
