package core

import (
	"context"
)

// EmailNotificationManager has contracts for sendmail
type EmailNotificationManager interface {
	// SendInquiryNotification sends the admin notification and the courtesy
	// mail to the submitter for a stored inquiry. The two sends are
	// independent; failure of one does not prevent the other.
	SendInquiryNotification(ctx context.Context, inquiry *Inquiry) error
	// SendBrochureLeadNotification sends the admin notification for a stored
	// brochure lead.
	SendBrochureLeadNotification(ctx context.Context, lead *BrochureLead) error
}
