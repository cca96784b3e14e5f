package app

import (
	"os"
	"strings"

	"delivery-dispatch/internal/config"
	"delivery-dispatch/internal/logx"
)

const serviceName = "delivery-dispatch"

// NewLogger builds the process logger from cfg.Log.
func NewLogger(cfg *config.Config) logx.Logger {
	if strings.EqualFold(cfg.Log.Backend, "zerolog") {
		return logx.NewZerologAdapter(os.Stdout, cfg.Log.Level, serviceName)
	}
	return logx.NewSlogJSON(os.Stdout, cfg.Log.Level, serviceName)
}
