package constants

import "time"

const (
	// ServiceName is the canonical name of this service.
	ServiceName = "export-api"
	// MysqlMaxIdleConnection max mysql idle connections.
	MysqlMaxIdleConnection = 25
	// MysqlMaxOpenConnection max mysql open connections.
	MysqlMaxOpenConnection = 25
	// MysqlMaxConnectionLifetime max mysql connection lifetime.
	MysqlMaxConnectionLifetime = 5 * time.Minute
	// MailSendTimeout bounds each call to the email provider.
	MailSendTimeout = 15 * time.Second
	// DefaultGracefulTimeout is default timeout for graceful shutdown of the app.
	DefaultGracefulTimeout = 30e9 // 30 seconds, value is int64 nanoseconds due to issue in viper.
	// DefaultLanguage is stored when the client does not send one.
	DefaultLanguage = "en"
	// DefaultTxRetries max attempts for a retried transaction.
	DefaultTxRetries = 3
	// DefaultTxRetryDelay base delay between transaction retries.
	DefaultTxRetryDelay = 100 * time.Millisecond
	// DefaultTxRetryJitter max jitter added to transaction retry delay.
	DefaultTxRetryJitter = 100 * time.Millisecond
)

// BinaryVersion is set at build time via ldflags.
var BinaryVersion = "dev"

// Inform values a submitter can self-declare.
const (
	InformExporter = "exporter"
	InformRetailer = "retailer"
	InformTrader   = "trader"
)

// CorsAllowedOrigins are the origins allowed to call the API with
// credentials when no override is configured.
var CorsAllowedOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
	"https://pmsl-monginis-export-feature.vercel.app",
}
