package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Config_Validation(t *testing.T) {
	req := require.New(t)

	valid := Config{Port: 5000, StorageFilepath: "/tmp/relay", LogLevel: "INFO"}
	req.NoError(valid.Validate())

	noStorage := Config{Port: 5000}
	req.Error(noStorage.Validate())

	badPort := Config{Port: 0, StorageFilepath: "/tmp/relay"}
	req.Error(badPort.Validate())

	portTooHigh := Config{Port: 70000, StorageFilepath: "/tmp/relay"}
	req.Error(portTooHigh.Validate())
}
