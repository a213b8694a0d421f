package config

import "time"

const (
	defaultTokenIssuer    = "smart-plant-guard"
	defaultTokenDuration  = time.Hour
	defaultLogLevel       = "debug"
	defaultDriver         = DriverPostgres
	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultSMTPPort       = 587
	defaultCodeTTL        = 5 * time.Minute
	defaultMFAStore       = MFAStoreMemory
)

// applyDefaults fills fields that no source has set.
func (cfg *StructuredConfig) applyDefaults() {
	setDefault(&cfg.App.TokenIssuer, defaultTokenIssuer)
	setDefault(&cfg.App.TokenDuration, defaultTokenDuration)
	setDefault(&cfg.App.LogLevel, defaultLogLevel)
	setDefault(&cfg.Storage.DB.Driver, defaultDriver)
	setDefault(&cfg.Server.HTTPAddress, defaultHTTPAddress)
	setDefault(&cfg.Server.RequestTimeout, defaultRequestTimeout)
	setDefault(&cfg.Mail.SMTPPort, defaultSMTPPort)
	setDefault(&cfg.MFA.CodeTTL, defaultCodeTTL)
	setDefault(&cfg.MFA.Store, defaultMFAStore)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}
