package main

import (
	"errors"
	"fmt"

	"procurement-search/config"
	"procurement-search/internal/repository"
	"procurement-search/internal/seed"

	"github.com/spf13/cobra"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load buyers and records from a fixture file",
	Long: `Reads a JSON fixture from a local path or an s3://bucket/key URL,
validates it and upserts its buyers, then its records.
S3_ENDPOINT selects an S3-compatible store such as R2 or MinIO.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "fixture path or s3://bucket/key (required)")
	_ = seedCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	if cfg.DBDriver == config.DriverMemory {
		return errors.New("the memory driver does not persist; set SEED_FILE on the API server instead")
	}

	store, err := repository.Open(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	res, err := seed.RunSource(cmd.Context(), cfg, store.Seeds, seedFile)
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	cmd.Printf("Seeded %d buyers and %d records from %s\n", res.Buyers, res.Records, seedFile)
	return nil
}
