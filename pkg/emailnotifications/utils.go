package emailnotifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"

	"github.com/monginis/export-api/pkg/constants"
	errs "github.com/monginis/export-api/pkg/errors"
)

// sendEmail makes one provider call, timeboxed at constants.MailSendTimeout.
// Returns the provider message id on success.
func (e *emailNotificationManager) sendEmail(ctx context.Context, msg *sendRequest) (string, error) {
	if strings.TrimSpace(msg.TextContent) == "" {
		return "", errs.ErrEmptyMailBody
	}

	reqBody, errM := json.Marshal(msg)
	if errM != nil {
		e.logger.Errorf("failed to marshal mail payload, %v", errM)
		return "", errM
	}

	sendCtx, cancel := context.WithTimeout(ctx, constants.MailSendTimeout)
	defer cancel()

	headers := map[string]string{
		"accept":       "application/json",
		"content-type": "application/json",
		"api-key":      e.cfg.Mail.APIKey,
	}
	respBody, errA := e.requests.MakeAPIRequest(sendCtx, http.MethodPost, e.endpoint, reqBody, headers)
	if errA != nil {
		if sendCtx.Err() == context.DeadlineExceeded {
			e.logger.Errorf("mail provider call timed out after %v", constants.MailSendTimeout)
			return "", context.DeadlineExceeded
		}
		return "", errA
	}

	resp := sendResponse{}
	if err := json.Unmarshal(respBody, &resp); err != nil {
		// provider occasionally returns an empty body on 2xx
		return "", nil
	}
	return resp.MessageID, nil
}

// validateSender checks the correctness of the configured sender address.
func (e *emailNotificationManager) validateSender() error {
	if _, err := mail.ParseAddress(e.cfg.Mail.FromEmail); err != nil {
		e.logger.Errorf("invalid sender email: %v, error: %v", e.cfg.Mail.FromEmail, err)
		return err
	}
	return nil
}
