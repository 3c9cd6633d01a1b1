//go:build ignore

// Prints fresh secrets for the roadworks service .env file.
// Run with: go run scripts/generate_keys.go [admin-email]
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
)

func randomString(n int, enc *base64.Encoding) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return enc.EncodeToString(b), nil
}

func must(s string, err error) string {
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate secret: %v\n", err)
		os.Exit(1)
	}
	return s
}

func main() {
	adminEmail := "admin@example.com"
	if len(os.Args) > 1 {
		adminEmail = os.Args[1]
	}

	fmt.Println("# JWT signing keys (256 bit)")
	fmt.Printf("JWT_SECRET_KEY=%s\n", must(randomString(32, base64.StdEncoding)))
	fmt.Printf("JWT_REFRESH_SECRET_KEY=%s\n", must(randomString(32, base64.StdEncoding)))
	fmt.Println()
	fmt.Println("# Bootstrap admin, created on first start in the first configured company")
	fmt.Printf("ADMIN_EMAIL=%s\n", adminEmail)
	fmt.Printf("ADMIN_PASSWORD=%s\n", must(randomString(18, base64.RawURLEncoding)))
}
