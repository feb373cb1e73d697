package main

import (
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"log"

	"factorygate.in/factorygate/infrastructure/devops"
	"factorygate.in/factorygate/security"
)

// Mints a supervisor session token without going through the PIN endpoint.
// Useful for smoke-testing the protected routes.
func main() {
	ttl := flag.Int64("ttl", 3600, "token lifetime in seconds")
	flag.Parse()

	cfg, err := devops.LoadAppConfig(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	secret, err := base64.StdEncoding.DecodeString(cfg.SigningSecret)
	if err != nil {
		log.Fatal("Failed to decode signing secret:", err)
	}

	token, err := security.CreateSupervisorToken(secret, *ttl)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(token)
}
