package configs

import "time"

// Messenger configures the outbound Send API client and the inbound
// webhook.
type Messenger struct {
	Endpoint     string        `env:"ENDPOINT" envDefault:"https://graph.facebook.com/v19.0/me/messages"`
	SendInterval time.Duration `env:"SEND_INTERVAL" envDefault:"250ms"`
	Timeout      time.Duration `env:"TIMEOUT" envDefault:"10s"`
	RetryMax     int           `env:"RETRY_MAX" envDefault:"2"`
	// AppSecret signs webhook deliveries. Signature checks are skipped when
	// it is empty.
	AppSecret   string `env:"APP_SECRET"`
	VerifyToken string `env:"VERIFY_TOKEN"`
}
