// Package main provides the medallion CLI: batch warehouse pipeline over
// CRM and ERP source extracts.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
