// Command fasturi parses, resolves and rewrites URI references from the command line.
package main

import (
	"log"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}
