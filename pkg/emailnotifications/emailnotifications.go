package emailnotifications

import (
	"text/template"

	"github.com/monginis/export-api/config"
	"github.com/monginis/export-api/pkg/core"
	"github.com/monginis/export-api/pkg/lumber"
)

const adminInquiryTemplate = `Inquiry ID: {{.ID}}

Name: {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}
Inform: {{.Inform}}
Country: {{.Country}}
Language: {{.Language}}

Business Details:
{{.BusinessDetails}}`

const customerInquiryTemplate = `Hi {{.Name}},

Thank you for contacting Monginis Export Team.

We have received your inquiry and our team will contact you shortly.

Reference ID: {{.ID}}

Regards,
Monginis Export Team`

const brochureLeadTemplate = `Name: {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}
Language: {{.Language}}`

// mailAddress is the provider's name/email pair.
type mailAddress struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// sendRequest is the provider's transactional email payload. The provider
// requires a non-empty textContent.
type sendRequest struct {
	Sender      mailAddress   `json:"sender"`
	To          []mailAddress `json:"to"`
	Subject     string        `json:"subject"`
	TextContent string        `json:"textContent"`
	ReplyTo     *mailAddress  `json:"replyTo,omitempty"`
}

type sendResponse struct {
	MessageID string `json:"messageId"`
}

type emailNotificationManager struct {
	cfg         *config.Config
	logger      lumber.Logger
	requests    core.Requests
	endpoint    string
	adminTpl    *template.Template
	customerTpl *template.Template
	brochureTpl *template.Template
}

// New returns a new EmailNotificationManager
func New(cfg *config.Config,
	requests core.Requests,
	logger lumber.Logger) core.EmailNotificationManager {
	return &emailNotificationManager{
		cfg:         cfg,
		logger:      logger,
		requests:    requests,
		endpoint:    cfg.Mail.Endpoint,
		adminTpl:    template.Must(template.New("adminInquiry").Parse(adminInquiryTemplate)),
		customerTpl: template.Must(template.New("customerInquiry").Parse(customerInquiryTemplate)),
		brochureTpl: template.Must(template.New("brochureLead").Parse(brochureLeadTemplate)),
	}
}
