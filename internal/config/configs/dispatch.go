package configs

import "time"

// Dispatch configures the scheduled dispatcher and the stale-run
// reconciler.
type Dispatch struct {
	Enabled      bool          `env:"ENABLED" envDefault:"true"`
	TickInterval time.Duration `env:"TICK_INTERVAL" envDefault:"10s"`
	// CheckpointEvery is the number of send attempts between progress
	// writes.
	CheckpointEvery int `env:"CHECKPOINT_EVERY" envDefault:"10"`
	// ActiveWindow is the trailing window of the recency audiences and of
	// the free-response rule.
	ActiveWindow      time.Duration `env:"ACTIVE_WINDOW" envDefault:"24h"`
	StaleAfter        time.Duration `env:"STALE_AFTER" envDefault:"15m"`
	ReconcileInterval time.Duration `env:"RECONCILE_INTERVAL" envDefault:"1m"`
}
