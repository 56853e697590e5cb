package stripe

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"kinscreen-backend/testutils"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func TestWebhook_MissingSecret(t *testing.T) {
	h := NewHandler("")
	r := testutils.SetupTestRouter()
	r.POST("/stripe/webhook", h.Webhook)

	req, _ := http.NewRequest(http.MethodPost, "/stripe/webhook", bytes.NewBufferString(`{}`))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestWebhook_InvalidSignature(t *testing.T) {
	h := NewHandler("whsec_test")
	r := testutils.SetupTestRouter()
	r.POST("/stripe/webhook", h.Webhook)

	req, _ := http.NewRequest(http.MethodPost, "/stripe/webhook", bytes.NewBufferString(`{"type":"payment_intent.succeeded"}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=forged")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
