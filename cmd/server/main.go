// Package main is the entry point for the trainer-api gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/trainer-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "trainer-api",
	Short: "Trainer API gRPC Server",
	Long:  `Trainer API serves normalized creature stats and limit-break resolved support cards over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(validateDataCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
