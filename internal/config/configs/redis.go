package configs

import "time"

// Redis configures the optional campaign event publisher.
type Redis struct {
	Enabled     bool          `env:"ENABLED" envDefault:"false"`
	Address     string        `env:"ADDRESS" envDefault:"localhost:6379"`
	Password    string        `env:"PASSWORD"`
	DB          int           `env:"DB" envDefault:"0"`
	Channel     string        `env:"CHANNEL" envDefault:"pagecast:campaign-events"`
	SnapshotTTL time.Duration `env:"SNAPSHOT_TTL" envDefault:"24h"`
}
