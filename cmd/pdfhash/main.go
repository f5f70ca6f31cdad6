// Command pdfhash submits a PDF to a digest endpoint and prints the result.
//
// Usage:
//
//	pdfhash sum document.pdf                 Hash with the server default
//	pdfhash sum --algorithm blake3 doc.pdf   Hash with a specific algorithm
//	pdfhash algorithms                       List supported algorithms
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"pdfhash/client"
	"pdfhash/internal/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pdfhash",
		Short: "Compute deterministic digests of PDF documents via the digest endpoint",
	}

	rootCmd.AddCommand(
		newSumCmd(),
		newAlgorithmsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newSumCmd() *cobra.Command {
	var algorithm string
	var endpoint string

	cmd := &cobra.Command{
		Use:   "sum <file>",
		Short: "Submit a PDF file and print its digest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if endpoint == "" {
				endpoint = cfg.Endpoint
			}
			if endpoint == "" {
				return fmt.Errorf("no endpoint configured: set PDFHASH_ENDPOINT or --endpoint")
			}

			c := client.New(client.Config{
				Endpoint:      endpoint,
				APIKey:        cfg.APIKey,
				Timeout:       cfg.RequestTimeout,
				MaxAttempts:   cfg.MaxAttempts,
				BackoffBase:   cfg.BackoffBase,
				BackoffJitter: cfg.BackoffJitter,
			})

			outcome := c.HashFile(cmd.Context(), args[0], algorithm)
			if outcome.Err != nil {
				return fmt.Errorf("%s (after %d attempt(s))", outcome.Err.Error(), outcome.Attempts)
			}

			fmt.Printf("%s  %s  (%s, %d bytes, %d attempt(s))\n",
				outcome.Result.Digest, args[0], outcome.Result.Algorithm,
				outcome.Result.ByteLength, outcome.Attempts)
			return nil
		},
	}

	cmd.Flags().StringVar(&algorithm, "algorithm", "", "digest algorithm (server default when empty)")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "digest endpoint URL (defaults to PDFHASH_ENDPOINT)")
	return cmd
}

func newAlgorithmsCmd() *cobra.Command {
	var endpoint string

	cmd := &cobra.Command{
		Use:   "algorithms",
		Short: "List the algorithms the endpoint supports",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if endpoint == "" {
				endpoint = cfg.Endpoint
			}
			if endpoint == "" {
				return fmt.Errorf("no endpoint configured: set PDFHASH_ENDPOINT or --endpoint")
			}

			req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, endpoint+"/algorithms", nil)
			if err != nil {
				return err
			}
			if cfg.APIKey != "" {
				req.Header.Set("x-api-key", cfg.APIKey)
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			var listing struct {
				Algorithms []struct {
					Name        string `json:"name"`
					Description string `json:"description"`
				} `json:"algorithms"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
				return fmt.Errorf("malformed listing response: %w", err)
			}
			for _, algo := range listing.Algorithms {
				fmt.Printf("%-10s %s\n", algo.Name, algo.Description)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", "", "digest endpoint URL (defaults to PDFHASH_ENDPOINT)")
	return cmd
}
