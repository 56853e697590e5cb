package emails

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"kinscreen-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

type fakeMailer struct {
	sentTo   []string
	messages [][]byte
	failFor  map[string]error
}

func (f *fakeMailer) Send(to string, message []byte) error {
	if err, ok := f.failFor[to]; ok {
		return err
	}
	f.sentTo = append(f.sentTo, to)
	f.messages = append(f.messages, message)
	return nil
}

func postJSON(h http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	jsonData, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)
	return resp
}

func TestSend_Text(t *testing.T) {
	mail := &fakeMailer{}
	h := NewHandler(mail)

	r := testutils.SetupTestRouter()
	r.POST("/send-email", h.Send)

	resp := postJSON(r, "/send-email", map[string]string{
		"to":      "jane.doe@example.com",
		"subject": "Hello",
		"text":    "Plain text body",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, []string{"jane.doe@example.com"}, mail.sentTo)
	assert.Contains(t, string(mail.messages[0]), "Subject: Hello\r\n")
	assert.Contains(t, string(mail.messages[0]), "text/plain")
}

func TestSend_HTMLTakesPrecedence(t *testing.T) {
	mail := &fakeMailer{}
	h := NewHandler(mail)

	r := testutils.SetupTestRouter()
	r.POST("/send-email", h.Send)

	resp := postJSON(r, "/send-email", map[string]string{
		"to":      "jane.doe@example.com",
		"subject": "Hello",
		"text":    "fallback",
		"html":    "<p>rich body</p>",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, string(mail.messages[0]), "text/html")
	assert.Contains(t, string(mail.messages[0]), "<p>rich body</p>")
}

func TestSend_RequiresBody(t *testing.T) {
	h := NewHandler(&fakeMailer{})

	r := testutils.SetupTestRouter()
	r.POST("/send-email", h.Send)

	resp := postJSON(r, "/send-email", map[string]string{
		"to":      "jane.doe@example.com",
		"subject": "Hello",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestSend_SMTPFailure(t *testing.T) {
	mail := &fakeMailer{failFor: map[string]error{"jane.doe@example.com": errors.New("smtp unreachable")}}
	h := NewHandler(mail)

	r := testutils.SetupTestRouter()
	r.POST("/send-email", h.Send)

	resp := postJSON(r, "/send-email", map[string]string{
		"to":      "jane.doe@example.com",
		"subject": "Hello",
		"text":    "body",
	})

	assert.Equal(t, http.StatusBadGateway, resp.Code)
}

func TestEnqueue_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "email_queue" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("123e4567-e89b-12d3-a456-426614174000"))
	mock.ExpectCommit()

	h := NewHandler(&fakeMailer{})
	r := testutils.SetupTestRouter()
	r.POST("/emails/queue", h.Enqueue)

	resp := postJSON(r, "/emails/queue", map[string]string{
		"to":      "jane.doe@example.com",
		"subject": "Hello",
		"html":    "<p>queued</p>",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.NotNil(t, respBody["id"])
}

func TestProcessQueue_Empty(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "email_queue" WHERE status = (.+)`).
		WillReturnRows(mock.NewRows([]string{"id"}))

	h := NewHandler(&fakeMailer{})
	r := testutils.SetupTestRouter()
	r.POST("/emails/process", h.ProcessQueue)

	resp := postJSON(r, "/emails/process", nil)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "No pending emails", respBody["message"])
}

func TestProcessQueue_MixedOutcome(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "email_queue" WHERE status = (.+)`).
		WillReturnRows(mock.NewRows([]string{"id", "to_email", "subject", "html_content", "status", "created_at", "updated_at"}).
			AddRow("123e4567-e89b-12d3-a456-426614174000", "jane.doe@example.com", "Hello", "<p>one</p>", "pending", time.Now(), time.Now()).
			AddRow("223e4567-e89b-12d3-a456-426614174000", "broken@example.com", "Hello", "<p>two</p>", "pending", time.Now(), time.Now()))
	// First mail goes out and is marked sent.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "email_queue" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	// Second mail fails and keeps the error text.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "email_queue" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mail := &fakeMailer{failFor: map[string]error{"broken@example.com": errors.New("mailbox full")}}
	h := NewHandler(mail)
	r := testutils.SetupTestRouter()
	r.POST("/emails/process", h.ProcessQueue)

	resp := postJSON(r, "/emails/process", nil)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, float64(2), respBody["processed"])
	assert.Equal(t, float64(1), respBody["sent"])
	assert.Equal(t, float64(1), respBody["failed"])
	assert.Equal(t, []string{"jane.doe@example.com"}, mail.sentTo)
}
