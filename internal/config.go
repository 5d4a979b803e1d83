package internal

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config is the environment supplied by the bootstrap layer. The core
// itself only consumes the listen port and the storage location.
type Config struct {
	Port            int    `env:"RELAY_PORT,default=5000" validate:"gt=0,lte=65535"`
	StorageFilepath string `env:"STORAGE_FILEPATH,required=true" validate:"required"`
	LogLevel        string `env:"LOG_LEVEL,default=INFO"`
	// DebugPort exposes the badger inspect page; 0 disables it.
	DebugPort int `env:"DEBUG_PORT" validate:"gte=0,lte=65535"`
	// ConsoleEvents switches the operator console rendering on; when off,
	// events go to the structured log only.
	ConsoleEvents bool `env:"CONSOLE_EVENTS,default=true"`
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
