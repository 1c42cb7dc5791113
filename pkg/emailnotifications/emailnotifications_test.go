package emailnotifications

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/monginis/export-api/config"
	"github.com/monginis/export-api/pkg/core"
	errs "github.com/monginis/export-api/pkg/errors"
	"github.com/monginis/export-api/pkg/lumber"

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

type capturedCall struct {
	method   string
	endpoint string
	payload  sendRequest
	headers  map[string]string
	deadline time.Time
}

type requestsStub struct {
	calls []capturedCall
	// errOn fails the nth call (1-based); 0 fails none, -1 fails all
	errOn int
	err   error
}

func (r *requestsStub) MakeAPIRequest(ctx context.Context, httpMethod, endpoint string,
	body []byte, headers map[string]string) ([]byte, error) {
	call := capturedCall{method: httpMethod, endpoint: endpoint, headers: headers}
	if deadline, ok := ctx.Deadline(); ok {
		call.deadline = deadline
	}
	if err := json.Unmarshal(body, &call.payload); err != nil {
		return nil, err
	}
	r.calls = append(r.calls, call)
	if r.errOn == -1 || r.errOn == len(r.calls) {
		return nil, r.err
	}
	return []byte(`{"messageId":"<msg-1@provider>"}`), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Mail: config.MailConfig{
			APIKey:     "test-key",
			Endpoint:   "https://api.brevo.com/v3/smtp/email",
			SenderName: "Monginis Export",
			FromEmail:  "noreply@monginis.example",
			AdminEmail: "exports@monginis.example",
		},
	}
}

func testInquiry() *core.Inquiry {
	return &core.Inquiry{
		ID:              "0f0e0d0c0b0a09080706050403020100",
		Name:            "Jane Doe",
		Email:           "jane@x.com",
		Phone:           "9876543210",
		Inform:          "retailer",
		Country:         "France",
		BusinessDetails: "Seeking distributor",
		Language:        "en",
	}
}

func TestSendInquiryNotification(t *testing.T) {
	requests := &requestsStub{}
	manager := New(testConfig(), requests, nopLogger{})

	err := manager.SendInquiryNotification(context.Background(), testInquiry())
	require.NoError(t, err)
	require.Len(t, requests.calls, 2)

	admin := requests.calls[0]
	require.Equal(t, "POST", admin.method)
	require.Equal(t, "https://api.brevo.com/v3/smtp/email", admin.endpoint)
	require.Equal(t, "test-key", admin.headers["api-key"])
	require.Equal(t, "exports@monginis.example", admin.payload.To[0].Email)
	require.Equal(t, "New Inquiry from Jane Doe", admin.payload.Subject)
	require.NotNil(t, admin.payload.ReplyTo)
	require.Equal(t, "jane@x.com", admin.payload.ReplyTo.Email)
	require.Contains(t, admin.payload.TextContent, "Inquiry ID: 0f0e0d0c0b0a09080706050403020100")
	require.Contains(t, admin.payload.TextContent, "Seeking distributor")

	customer := requests.calls[1]
	require.Equal(t, "jane@x.com", customer.payload.To[0].Email)
	require.Equal(t, "We received your inquiry", customer.payload.Subject)
	require.Nil(t, customer.payload.ReplyTo)
	require.Contains(t, customer.payload.TextContent, "Hi Jane Doe")
	require.Contains(t, customer.payload.TextContent, "Reference ID: 0f0e0d0c0b0a09080706050403020100")
}

func TestSendInquiryNotificationAdminFailure(t *testing.T) {
	// admin send fails, courtesy mail must still go out
	requests := &requestsStub{errOn: 1, err: errs.New("non 2xx status code")}
	manager := New(testConfig(), requests, nopLogger{})

	err := manager.SendInquiryNotification(context.Background(), testInquiry())
	require.Error(t, err)
	require.Len(t, requests.calls, 2)
	require.Equal(t, "jane@x.com", requests.calls[1].payload.To[0].Email)
}

func TestSendInquiryNotificationInvalidSender(t *testing.T) {
	cfg := testConfig()
	cfg.Mail.FromEmail = "not-an-address"
	requests := &requestsStub{}
	manager := New(cfg, requests, nopLogger{})

	err := manager.SendInquiryNotification(context.Background(), testInquiry())
	require.Error(t, err)
	require.Empty(t, requests.calls)
}

func TestSendBrochureLeadNotification(t *testing.T) {
	requests := &requestsStub{}
	manager := New(testConfig(), requests, nopLogger{})

	lead := &core.BrochureLead{
		ID:       "aabbccddeeff00112233445566778899",
		Name:     "A",
		Email:    "a@b.com",
		Phone:    "1112223333",
		Language: "en",
	}
	err := manager.SendBrochureLeadNotification(context.Background(), lead)
	require.NoError(t, err)
	require.Len(t, requests.calls, 1)

	call := requests.calls[0]
	require.Equal(t, "exports@monginis.example", call.payload.To[0].Email)
	require.Equal(t, "Brochure Download Request - A", call.payload.Subject)
	require.NotNil(t, call.payload.ReplyTo)
	require.Equal(t, "a@b.com", call.payload.ReplyTo.Email)
	require.Contains(t, call.payload.TextContent, "Phone: 1112223333")
}

func TestSendEmailTimebox(t *testing.T) {
	requests := &requestsStub{}
	manager := New(testConfig(), requests, nopLogger{})

	before := time.Now()
	err := manager.SendBrochureLeadNotification(context.Background(), &core.BrochureLead{
		ID:    "id",
		Name:  "A",
		Email: "a@b.com",
		Phone: "1112223333",
	})
	require.NoError(t, err)
	require.Len(t, requests.calls, 1)

	// each provider call carries its own 15s deadline
	deadline := requests.calls[0].deadline
	require.False(t, deadline.IsZero())
	require.WithinDuration(t, before.Add(15*time.Second), deadline, time.Second)
}

func TestSendEmailEmptyBody(t *testing.T) {
	requests := &requestsStub{}
	manager := New(testConfig(), requests, nopLogger{}).(*emailNotificationManager)

	_, err := manager.sendEmail(context.Background(), &sendRequest{
		Sender:  mailAddress{Email: "noreply@monginis.example"},
		To:      []mailAddress{{Email: "exports@monginis.example"}},
		Subject: "empty",
	})
	require.ErrorIs(t, err, errs.ErrEmptyMailBody)
	require.Empty(t, requests.calls)
}
