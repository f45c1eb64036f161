package common

import (
	"wiper/internal/domain/safety"
	"wiper/internal/infra/config"
	"wiper/internal/infra/logging"
)

type contextKey string

const ContextKeyApp contextKey = "appctx"

type GlobalOptions struct {
	DryRun  bool
	Debug   bool
	JSON    bool
	NoOpLog bool
}

type AppContext struct {
	Options  GlobalOptions
	Config   config.Config
	Logger   logging.Logger
	Prompter safety.Prompter
}
