package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"kinscreen-backend/config"
	"kinscreen-backend/payments"
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

type fakeCreator struct {
	result payments.IntentResult
	err    error
	calls  int
}

func (f *fakeCreator) CreateIntent(ctx context.Context, req payments.IntentRequest) (payments.IntentResult, error) {
	f.calls++
	return f.result, f.err
}

func (f *fakeCreator) CancelIntent(ctx context.Context, id string) error {
	return nil
}

func newTestHandler(creator payments.IntentCreator) *Handler {
	client := payments.NewClient(config.Payments{MaxRetries: 3, BackoffBase: 1}, creator)
	return NewHandler(client)
}

func postIntent(h *Handler, body map[string]interface{}) *httptest.ResponseRecorder {
	r := testutils.SetupTestRouter()
	r.POST("/create-payment-intent", h.CreatePaymentIntent)

	jsonData, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, "/create-payment-intent", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)
	return resp
}

func TestCreatePaymentIntent_Success(t *testing.T) {
	creator := &fakeCreator{result: payments.IntentResult{ID: "pi_1", ClientSecret: "pi_1_secret"}}
	h := newTestHandler(creator)

	resp := postIntent(h, map[string]interface{}{"amount": 500, "currency": "usd"})

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "pi_1_secret", respBody["clientSecret"])
	assert.Equal(t, 1, creator.calls)
}

func TestCreatePaymentIntent_MissingAmount(t *testing.T) {
	h := newTestHandler(&fakeCreator{})

	resp := postIntent(h, map[string]interface{}{"currency": "usd"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCreatePaymentIntent_NegativeAmount(t *testing.T) {
	h := newTestHandler(&fakeCreator{})

	resp := postIntent(h, map[string]interface{}{"amount": -500})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCreatePaymentIntent_GatewayExhausted(t *testing.T) {
	creator := &fakeCreator{err: errors.New("gateway unavailable")}
	h := newTestHandler(creator)

	resp := postIntent(h, map[string]interface{}{"amount": 500})

	assert.Equal(t, http.StatusBadGateway, resp.Code)
	assert.Equal(t, 3, creator.calls)
}
