package brochurelead

import (
	"context"
	"net/http"
	"time"

	"github.com/monginis/export-api/pkg/constants"
	"github.com/monginis/export-api/pkg/core"
	errs "github.com/monginis/export-api/pkg/errors"
	"github.com/monginis/export-api/pkg/lumber"
	"github.com/monginis/export-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

const (
	savedMessage          = "Lead saved successfully"
	requiredFieldsMessage = "Name, email, and phone are required"
)

// HandleCreate validates and stores a brochure-download lead, then
// dispatches the admin notification detached from the request. The client
// only starts the actual file download after the success response.
func HandleCreate(
	brochureLeadStore core.BrochureLeadStore,
	emailNotificationManager core.EmailNotificationManager,
	logger lumber.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var lead core.BrochureLead
		if err := c.ShouldBindJSON(&lead); err != nil {
			logger.Errorf("error while binding json %v", err)
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": requiredFieldsMessage,
				"errors":  errs.ValidationErr(err),
			})
			return
		}

		lead.Phone = utils.SanitizePhone(lead.Phone)
		if !utils.ValidPhone(lead.Phone) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": errs.ErrInvalidPhone.Error(),
				"errors":  []errs.ValidationError{{Field: "phone", Reason: "must be a 10 digit number with an optional country code"}},
			})
			return
		}

		lead.ID = utils.GenerateUUID()
		if lead.Language == "" {
			lead.Language = constants.DefaultLanguage
		}
		lead.Created = time.Now()

		ctx, cancel := context.WithCancel(c.Request.Context())
		defer cancel()

		if err := brochureLeadStore.Create(ctx, &lead); err != nil {
			logger.Errorf("failed to insert brochure lead, error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": errs.ErrLeadSaveFailed.Error()})
			return
		}

		// best-effort admin notification, outcome logged only
		go func(l core.BrochureLead) {
			if err := emailNotificationManager.SendBrochureLeadNotification(context.Background(), &l); err != nil {
				logger.Errorf("brochure lead notification failed for lead %s: %v", l.ID, err)
			}
		}(lead)

		c.JSON(http.StatusCreated, gin.H{"success": true, "message": savedMessage, "data": &lead})
	}
}

// HandleList returns every brochure lead, newest first. Admin use only.
func HandleList(brochureLeadStore core.BrochureLeadStore, logger lumber.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithCancel(c.Request.Context())
		defer cancel()

		leads, err := brochureLeadStore.FindAll(ctx)
		if err != nil {
			logger.Errorf("failed to fetch brochure leads, error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": errs.ErrLeadFetchFailed.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": leads})
	}
}
