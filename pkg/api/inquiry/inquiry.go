package inquiry

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/monginis/export-api/pkg/constants"
	"github.com/monginis/export-api/pkg/core"
	errs "github.com/monginis/export-api/pkg/errors"
	"github.com/monginis/export-api/pkg/lumber"
	"github.com/monginis/export-api/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	createdMessage        = "Inquiry submitted successfully"
	requiredFieldsMessage = "Name, email, phone, inform, country, and business details are required"
)

// HandleCreate validates and stores a new inquiry, then dispatches the
// email notifications detached from the request.
func HandleCreate(
	inquiryStore core.InquiryStore,
	emailNotificationManager core.EmailNotificationManager,
	logger lumber.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var inquiry core.Inquiry
		if err := c.ShouldBindJSON(&inquiry); err != nil {
			logger.Errorf("error while binding json %v", err)
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": bindErrMessage(err),
				"errors":  errs.ValidationErr(err),
			})
			return
		}

		inquiry.Phone = utils.SanitizePhone(inquiry.Phone)
		if !utils.ValidPhone(inquiry.Phone) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": errs.ErrInvalidPhone.Error(),
				"errors":  []errs.ValidationError{{Field: "phone", Reason: "must be a 10 digit number with an optional country code"}},
			})
			return
		}

		inquiry.ID = utils.GenerateUUID()
		if inquiry.Language == "" {
			inquiry.Language = constants.DefaultLanguage
		}
		inquiry.Created = time.Now()

		ctx, cancel := context.WithCancel(c.Request.Context())
		defer cancel()

		if err := inquiryStore.Create(ctx, &inquiry); err != nil {
			logger.Errorf("failed to insert inquiry, error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": errs.ErrInquirySubmitFailed.Error()})
			return
		}

		// Notification is best-effort and detached from the request lifetime,
		// so a client disconnect cannot cancel the sends. The outcome is
		// logged, never surfaced to the caller.
		go func(inq core.Inquiry) {
			if err := emailNotificationManager.SendInquiryNotification(context.Background(), &inq); err != nil {
				logger.Errorf("inquiry notification failed for inquiry %s: %v", inq.ID, err)
			}
		}(inquiry)

		c.JSON(http.StatusCreated, gin.H{"success": true, "message": createdMessage, "data": &inquiry})
	}
}

// HandleList returns every inquiry, newest first. Admin use only.
func HandleList(inquiryStore core.InquiryStore, logger lumber.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithCancel(c.Request.Context())
		defer cancel()

		inquiries, err := inquiryStore.FindAll(ctx)
		if err != nil {
			logger.Errorf("failed to fetch inquiries, error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": errs.ErrInquiryFetchFailed.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": inquiries})
	}
}

// bindErrMessage maps a binding error to the caller-facing message. An
// inform value outside the allowed set gets its own message, everything
// else falls back to the required-fields message.
func bindErrMessage(err error) string {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		for _, f := range verr {
			if strings.EqualFold(f.Field(), "inform") && f.ActualTag() == "oneof" {
				return errs.ErrInvalidInform.Error()
			}
		}
	}
	return requiredFieldsMessage
}
