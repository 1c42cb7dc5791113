package emailnotifications

import (
	"bytes"
	"context"
	"fmt"

	"github.com/monginis/export-api/pkg/core"
)

// SendBrochureLeadNotification sends the single admin-facing mail for a
// stored brochure lead. No courtesy mail goes to the submitter.
func (e *emailNotificationManager) SendBrochureLeadNotification(ctx context.Context, lead *core.BrochureLead) error {
	if err := e.validateSender(); err != nil {
		return err
	}

	var body bytes.Buffer
	if err := e.brochureTpl.Execute(&body, lead); err != nil {
		e.logger.Errorf("failed to build brochure lead mail body, %v", err)
		return err
	}

	msg := &sendRequest{
		Sender:      mailAddress{Name: e.cfg.Mail.SenderName, Email: e.cfg.Mail.FromEmail},
		To:          []mailAddress{{Email: e.cfg.Mail.AdminEmail}},
		Subject:     fmt.Sprintf("Brochure Download Request - %s", lead.Name),
		TextContent: body.String(),
		ReplyTo:     &mailAddress{Email: lead.Email},
	}
	messageID, err := e.sendEmail(ctx, msg)
	if err != nil {
		e.logger.Errorf("error in sending brochure lead mail for lead %s: %v", lead.ID, err)
		return err
	}
	e.logger.Debugf("brochure lead mail sent for lead %s, messageID: %s", lead.ID, messageID)
	return nil
}
