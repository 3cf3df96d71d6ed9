package texmath

import (
	"strconv"

	"github.com/npillmayer/schuko/gconf"

	"github.com/npillmayer/tymath/core"
	"github.com/npillmayer/tymath/core/dimen"
	"github.com/npillmayer/tymath/core/font/metrics"
	"github.com/npillmayer/tymath/engine/texmath/style"
)

// Config controls a layout run.
type Config struct {
	TextSize     int              // size level 1…11, 6 is normal size
	Display      bool             // start in display style instead of text style
	BaselineSkip dimen.Dimen      // distance of matrix rows; 0 uses the register default
	Metrics      metrics.Provider // nil for the built-in metrics
}

// DefaultConfig returns a configuration for text style at normal size.
func DefaultConfig() Config {
	return Config{TextSize: style.NormalSize}
}

// Configuration keys read by ConfigFromGlobal.
const (
	KeyTextSize     = "tymath.textsize"
	KeyBaselineSkip = "tymath.baselineskip"
)

// ConfigFromGlobal reads a configuration from the global configuration.
// Keys which are not set leave the defaults unchanged.
func ConfigFromGlobal() (Config, error) {
	return configFrom(gconf.GetString)
}

func configFrom(get func(string) string) (Config, error) {
	cfg := DefaultConfig()
	if s := get(KeyTextSize); s != "" {
		size, err := strconv.Atoi(s)
		if err != nil || size < 1 || size > 11 {
			return cfg, core.Error(core.EINVALID, "%s must be a size level 1…11, is %q", KeyTextSize, s)
		}
		cfg.TextSize = size
	}
	if s := get(KeyBaselineSkip); s != "" {
		d, isPercent, err := dimen.ParseDimen(s)
		if err != nil || isPercent || d <= 0 {
			return cfg, core.Error(core.EINVALID, "%s must be a positive dimension, is %q", KeyBaselineSkip, s)
		}
		cfg.BaselineSkip = d
	}
	tracer().Debugf("config: text size %d, baseline skip %s", cfg.TextSize, cfg.BaselineSkip)
	return cfg, nil
}

func (cfg Config) options() style.Options {
	st := style.T
	if cfg.Display {
		st = style.D
	}
	size := cfg.TextSize
	if size == 0 {
		size = style.NormalSize
	}
	return style.NewOptions(st, size)
}
