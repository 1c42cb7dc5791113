package config

import (
	"time"

	"github.com/monginis/export-api/pkg/lumber"
)

type (
	// ConfigWrapper is a wrapper for the config
	ConfigWrapper struct {
		Config `json:"data"`
	}

	// Config the application's configuration
	Config struct {
		DB                 DBConfig
		Mail               MailConfig
		Port               string
		LogFile            string
		LogConfig          lumber.LoggingConfig
		Env                string
		Verbose            bool
		CorsAllowedOrigins []string `json:"corsAllowedOrigins"`
		// AdminToken guards the admin listing endpoints.
		AdminToken      string `json:"adminToken"`
		GracefulTimeout time.Duration
	}

	// DBConfig providers the mysql db configuration.
	DBConfig struct {
		Host     string `json:"host"`
		Port     string `json:"port"`
		User     string `json:"user"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}

	// MailConfig configures the transactional email provider.
	MailConfig struct {
		// APIKey the Brevo API key
		APIKey string
		// Endpoint the Brevo transactional email endpoint
		Endpoint string
		// SenderName display name on outgoing mail
		SenderName string
		// FromEmail verified sender address
		FromEmail string
		// AdminEmail address receiving lead notifications
		AdminEmail string
	}
)
