// internal/config/constants.go
package config

const (
	AppName    = "mussar_keep"
	AppVersion = "0.3.0"
)

const (
	DefaultServerPort         = ":8080"
	DefaultEnvironment        = "production"
	DefaultLogLevel           = "info"
	DefaultTokenExpireMinutes = 60 * 24
)
