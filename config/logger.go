package config

import (
	"log"
	"os"

	"go.uber.org/zap"
)

// Logger defaults to a nop so packages can log before InitLogger
// runs (tests never call it).
var Logger = zap.NewNop()

func InitLogger() {
	var err error
	if os.Getenv("GIN_MODE") == "release" {
		Logger, err = zap.NewProduction()
	} else {
		Logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
}
