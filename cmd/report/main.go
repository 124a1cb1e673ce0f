// Command report prints analytics snapshots and writes report files straight
// from the databases, without going through the HTTP API.
//
// Usage:
//
//	go run ./cmd/report snapshot --granularity month --value 2024-02
//	go run ./cmd/report compare --granularity year --value 2024
//	go run ./cmd/report export --granularity month --value 2024-02 --format pdf --out feb.pdf
//	go run ./cmd/report token --admin-id <id> --email ops@modeva.com
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
