package config

import (
	"github.com/monginis/export-api/pkg/constants"
	"github.com/spf13/viper"
)

func setDefaultConfig() {
	viper.SetDefault("Data.LogConfig.EnableConsole", true)
	viper.SetDefault("Data.LogConfig.ConsoleJSONFormat", false)
	viper.SetDefault("Data.LogConfig.ConsoleLevel", "debug")
	viper.SetDefault("Data.LogConfig.EnableFile", true)
	viper.SetDefault("Data.LogConfig.FileJSONFormat", true)
	viper.SetDefault("Data.LogConfig.FileLevel", "debug")
	viper.SetDefault("Data.LogConfig.FileLocation", "./export-api.log")
	viper.SetDefault("Data.Env", "prod")
	viper.SetDefault("Data.Port", "5000")
	viper.SetDefault("Data.Verbose", true)
	viper.SetDefault("Data.GracefulTimeout", constants.DefaultGracefulTimeout)
	viper.SetDefault("Data.CorsAllowedOrigins", constants.CorsAllowedOrigins)
	viper.SetDefault("Data.Mail.Endpoint", "https://api.brevo.com/v3/smtp/email")
	viper.SetDefault("Data.Mail.SenderName", "Monginis Export")
}
