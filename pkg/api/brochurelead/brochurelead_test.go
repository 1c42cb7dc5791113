package brochurelead

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/monginis/export-api/pkg/core"
	"github.com/monginis/export-api/pkg/errors"
	"github.com/monginis/export-api/pkg/lumber"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...interface{}) {}
func (nopLogger) Infof(format string, args ...interface{})  {}
func (nopLogger) Warnf(format string, args ...interface{})  {}
func (nopLogger) Errorf(format string, args ...interface{}) {}
func (nopLogger) Fatalf(format string, args ...interface{}) {}
func (nopLogger) Panicf(format string, args ...interface{}) {}
func (n nopLogger) WithFields(keyValues lumber.Fields) lumber.Logger {
	return n
}

type stubLeadStore struct {
	createErr error
	created   []*core.BrochureLead
	items     []*core.BrochureLead
	findErr   error
}

func (s *stubLeadStore) Create(ctx context.Context, lead *core.BrochureLead) error {
	if s.createErr != nil {
		return s.createErr
	}
	clone := *lead
	s.created = append(s.created, &clone)
	return nil
}

func (s *stubLeadStore) FindAll(ctx context.Context) ([]*core.BrochureLead, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.items, nil
}

type notifierSpy struct {
	err   error
	calls int32
	sent  chan struct{}
}

func (n *notifierSpy) SendInquiryNotification(ctx context.Context, inquiry *core.Inquiry) error {
	return n.err
}

func (n *notifierSpy) SendBrochureLeadNotification(ctx context.Context, lead *core.BrochureLead) error {
	atomic.AddInt32(&n.calls, 1)
	if n.sent != nil {
		n.sent <- struct{}{}
	}
	return n.err
}

type leadEnvelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    core.BrochureLead `json:"data"`
}

func newTestRouter(store *stubLeadStore, notifier *notifierSpy) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/brochure-leads", HandleCreate(store, notifier, nopLogger{}))
	router.GET("/api/brochure-leads", HandleList(store, nopLogger{}))
	return router
}

func postLead(t *testing.T, router *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/brochure-leads", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleCreate(t *testing.T) {
	store := &stubLeadStore{}
	spy := &notifierSpy{sent: make(chan struct{}, 1)}
	router := newTestRouter(store, spy)

	w := postLead(t, router, map[string]interface{}{
		"name":  "A",
		"email": "a@b.com",
		"phone": "1112223333",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp leadEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Data.ID)
	require.Equal(t, "en", resp.Data.Language)
	require.Len(t, store.created, 1)

	select {
	case <-spy.sent:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification dispatch")
	}
	require.EqualValues(t, 1, atomic.LoadInt32(&spy.calls))
}

// country is collected by the client but intentionally not required here;
// the payload field is simply ignored.
func TestHandleCreateIgnoresCountry(t *testing.T) {
	store := &stubLeadStore{}
	spy := &notifierSpy{sent: make(chan struct{}, 1)}
	router := newTestRouter(store, spy)

	w := postLead(t, router, map[string]interface{}{
		"name":    "A",
		"email":   "a@b.com",
		"phone":   "1112223333",
		"country": "France",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, store.created, 1)
}

func TestHandleCreateMissingPhone(t *testing.T) {
	store := &stubLeadStore{}
	spy := &notifierSpy{}
	router := newTestRouter(store, spy)

	w := postLead(t, router, map[string]interface{}{
		"name":  "A",
		"email": "a@b.com",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Empty(t, store.created)
	require.EqualValues(t, 0, atomic.LoadInt32(&spy.calls))
}

func TestHandleCreateStoreFailure(t *testing.T) {
	store := &stubLeadStore{createErr: errors.New("db unavailable")}
	spy := &notifierSpy{}
	router := newTestRouter(store, spy)

	w := postLead(t, router, map[string]interface{}{
		"name":  "A",
		"email": "a@b.com",
		"phone": "1112223333",
	})

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp leadEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Failed to save lead", resp.Message)
	require.EqualValues(t, 0, atomic.LoadInt32(&spy.calls))
}

func TestHandleCreateNotifyFailure(t *testing.T) {
	store := &stubLeadStore{}
	spy := &notifierSpy{err: errors.New("provider timeout"), sent: make(chan struct{}, 1)}
	router := newTestRouter(store, spy)

	w := postLead(t, router, map[string]interface{}{
		"name":  "A",
		"email": "a@b.com",
		"phone": "1112223333",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	select {
	case <-spy.sent:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification dispatch")
	}
}

func TestHandleList(t *testing.T) {
	store := &stubLeadStore{items: []*core.BrochureLead{
		{ID: "b", Name: "Newer"},
		{ID: "a", Name: "Older"},
	}}
	router := newTestRouter(store, &notifierSpy{})

	req := httptest.NewRequest(http.MethodGet, "/api/brochure-leads", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                `json:"success"`
		Data    []core.BrochureLead `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "b", resp.Data[0].ID)
}
