package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/formbridge/formbridge/internal/config"
	"github.com/formbridge/formbridge/internal/tokens"
)

// Prints a short-lived bearer token for the admin submissions API, signed
// with the service SECRET_KEY. Usage:
//
//	admintoken [-sub ops] [-ttl 1h]
func main() {
	sub := flag.String("sub", "ops", "token subject")
	ttl := flag.Duration("ttl", 0, "token lifetime (default: ADMIN_TOKEN_TTL)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	lifetime := cfg.Admin.TokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	tok, err := tokens.GenerateAdminToken(cfg.Admin.SecretKey, *sub, lifetime)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
