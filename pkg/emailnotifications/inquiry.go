package emailnotifications

import (
	"bytes"
	"context"
	"fmt"

	"github.com/monginis/export-api/pkg/core"
)

const customerInquirySubject = "We received your inquiry"

// SendInquiryNotification sends the admin mail (reply-to set to the
// submitter) and the courtesy mail to the submitter. The two sends are
// independent: a failure of one is logged and the other is still attempted.
func (e *emailNotificationManager) SendInquiryNotification(ctx context.Context, inquiry *core.Inquiry) error {
	if err := e.validateSender(); err != nil {
		return err
	}

	var adminBody bytes.Buffer
	if err := e.adminTpl.Execute(&adminBody, inquiry); err != nil {
		e.logger.Errorf("failed to build admin inquiry mail body, %v", err)
		return err
	}

	var sendErr error
	adminMsg := &sendRequest{
		Sender:      mailAddress{Name: e.cfg.Mail.SenderName, Email: e.cfg.Mail.FromEmail},
		To:          []mailAddress{{Email: e.cfg.Mail.AdminEmail}},
		Subject:     fmt.Sprintf("New Inquiry from %s", inquiry.Name),
		TextContent: adminBody.String(),
		ReplyTo:     &mailAddress{Email: inquiry.Email},
	}
	if messageID, err := e.sendEmail(ctx, adminMsg); err != nil {
		e.logger.Errorf("error in sending inquiry admin mail for inquiry %s: %v", inquiry.ID, err)
		sendErr = err
	} else {
		e.logger.Debugf("inquiry admin mail sent for inquiry %s, messageID: %s", inquiry.ID, messageID)
	}

	var customerBody bytes.Buffer
	if err := e.customerTpl.Execute(&customerBody, inquiry); err != nil {
		e.logger.Errorf("failed to build customer inquiry mail body, %v", err)
		return err
	}

	customerMsg := &sendRequest{
		Sender:      mailAddress{Name: fmt.Sprintf("%s Team", e.cfg.Mail.SenderName), Email: e.cfg.Mail.FromEmail},
		To:          []mailAddress{{Name: inquiry.Name, Email: inquiry.Email}},
		Subject:     customerInquirySubject,
		TextContent: customerBody.String(),
	}
	if messageID, err := e.sendEmail(ctx, customerMsg); err != nil {
		e.logger.Errorf("error in sending inquiry courtesy mail to %s: %v", inquiry.Email, err)
		sendErr = err
	} else {
		e.logger.Debugf("inquiry courtesy mail sent to %s, messageID: %s", inquiry.Email, messageID)
	}

	return sendErr
}
