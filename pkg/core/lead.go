package core

import (
	"context"
	"time"

	"gopkg.in/guregu/null.v4"
)

// Inquiry represents a distributor inquiry captured from the contact form.
// ID, sanitized phone and Created are assigned server side.
type Inquiry struct {
	ID              string      `db:"id" json:"id"`
	Name            string      `db:"name" json:"name" binding:"required"`
	Email           string      `db:"email" json:"email" binding:"required,email"`
	Phone           string      `db:"phone" json:"phone" binding:"required"`
	Inform          string      `db:"inform" json:"inform" binding:"required,oneof=exporter retailer trader"`
	Country         string      `db:"country" json:"country" binding:"required"`
	BusinessDetails string      `db:"business_details" json:"businessDetails" binding:"required"`
	Message         null.String `db:"message" json:"message,omitempty"`
	Language        string      `db:"language" json:"language"`
	Created         time.Time   `db:"created_at" json:"createdAt"`
}

// BrochureLead represents a lead captured before a brochure download.
// The client additionally collects a country, but it is intentionally not
// required or persisted here, matching the endpoint contract.
type BrochureLead struct {
	ID       string    `db:"id" json:"id"`
	Name     string    `db:"name" json:"name" binding:"required"`
	Email    string    `db:"email" json:"email" binding:"required,email"`
	Phone    string    `db:"phone" json:"phone" binding:"required"`
	Language string    `db:"language" json:"language"`
	Created  time.Time `db:"created_at" json:"createdAt"`
}

// InquiryStore defines datastore operations for working with inquiries.
type InquiryStore interface {
	// Create inserts the inquiry in the db.
	Create(ctx context.Context, inquiry *Inquiry) error
	// FindAll returns every inquiry, newest first.
	FindAll(ctx context.Context) ([]*Inquiry, error)
}

// BrochureLeadStore defines datastore operations for working with brochure leads.
type BrochureLeadStore interface {
	// Create inserts the brochure lead in the db.
	Create(ctx context.Context, lead *BrochureLead) error
	// FindAll returns every brochure lead, newest first.
	FindAll(ctx context.Context) ([]*BrochureLead, error)
}
