package startupbuilder

import (
	"log"
	"os"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	"github.com/launchforge/startup-builder/internal/transport/server"
)

func init() {
	functionTarget := os.Getenv("FUNCTION_TARGET")
	if functionTarget == "" {
		log.Fatal("❌ Error: FUNCTION_TARGET environment variable is not set")
	}

	log.Printf("✅ Registering function: %s", functionTarget)

	functions.HTTP(functionTarget, server.HandleRequest)
}
