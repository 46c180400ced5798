package main

import (
	"time"

	"github.com/spf13/viper"

	"github.com/golunar/lunardate/internal/httpapi"
)

// setDefaults registers the default value of every config key.
func setDefaults(v *viper.Viper) {
	d := httpapi.DefaultConfig()
	v.SetDefault("calendar", "korean")
	v.SetDefault("format", "text")
	v.SetDefault("serve.addr", d.Addr)
	v.SetDefault("serve.rate_limit", d.RateLimit)
	v.SetDefault("serve.burst", d.Burst)
	v.SetDefault("serve.read_timeout", d.ReadTimeout)
	v.SetDefault("serve.write_timeout", d.WriteTimeout)
	v.SetDefault("serve.shutdown_timeout", d.ShutdownTimeout)
}

func serveConfig(v *viper.Viper) httpapi.Config {
	return httpapi.Config{
		Addr:            v.GetString("serve.addr"),
		RateLimit:       v.GetFloat64("serve.rate_limit"),
		Burst:           v.GetInt("serve.burst"),
		ReadTimeout:     durationOr(v.GetDuration("serve.read_timeout"), time.Second),
		WriteTimeout:    durationOr(v.GetDuration("serve.write_timeout"), time.Second),
		ShutdownTimeout: durationOr(v.GetDuration("serve.shutdown_timeout"), time.Second),
	}
}

func durationOr(d, floor time.Duration) time.Duration {
	if d < floor {
		return floor
	}
	return d
}
