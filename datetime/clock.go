package datetime

import (
	"time"

	"formtools/config"
)

var nowOverride *time.Time

// MustSetNowOverride pins the clock for deterministic tests. Only honored
// outside production.
func MustSetNowOverride(t time.Time) {
	if !config.Cfg.Env.IsDevOrTest() {
		panic("Now override is only for dev and test")
	}
	override := t
	nowOverride = &override
}

func ResetNowOverride() {
	nowOverride = nil
}

// Now is the reference clock for the package-level parse functions. Each
// parse reads it exactly once so a single call stays internally consistent.
func Now() time.Time {
	if config.Cfg.Env.IsDevOrTest() && nowOverride != nil {
		return *nowOverride
	}
	return time.Now()
}
