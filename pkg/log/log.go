// Package log provides application-level logging functionality for services.
//
// It creates loggers with settings chosen by environment:
//
//   - In non-production environments every flag is enabled, thread ids are traced and
//     colors are dropped automatically when stdout is not a terminal.
//   - In other environments debug and trace records are filtered, dates are full and
//     records also go to a daily log file named after the service.
//
// Usage:
//
//	logger, err := log.NewWithDefaults("development", "user-service")
//	if err != nil {
//		panic(err)
//	}
//	defer logger.Destroy()
//
//	logger.Info("service started")
package log

import (
	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/flaglog"
	"github.com/hyp3rd/flaglog/internal/constants"
	"github.com/hyp3rd/flaglog/pkg/adapter"
)

// NewWithDefaults creates a thread-safe logger for service in the given environment.
// An empty service name falls back to the default log file name.
func NewWithDefaults(environment, service string, opts ...adapter.Option) (*adapter.Adapter, error) {
	if service == "" {
		service = constants.DefaultName
	}

	var config flaglog.Config
	if environment == constants.NonProductionEnvironment {
		config = flaglog.DevelopmentConfig(service)
	} else {
		config = flaglog.ProductionConfig(service)
	}

	logger, err := adapter.NewAdapter(config, true, opts...)
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to create logger").
			WithMetadata("environment", environment).
			WithMetadata("service", service)
	}

	return logger, nil
}
