package config

import "time"

// Built-in defaults applied after all explicit sources. The token sign key
// has no default: it must be provided by the operator.
const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultDSN            = "fitness.db"
	DefaultTokenIssuer    = "go-fit-tracker"
	DefaultTokenDuration  = 30 * time.Minute
	DefaultRequestTimeout = 15 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://" + DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
