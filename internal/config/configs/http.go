package configs

// HTTP defines configuration for the HTTP server that exposes the payout
// triggers and read endpoints.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// TriggerToken, when set, must be presented as a bearer token on the
	// POST trigger endpoints.
	TriggerToken string `env:"TRIGGER_TOKEN"`
}
