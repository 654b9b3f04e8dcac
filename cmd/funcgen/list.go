package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkleszyk/java-function-extra/javagen"
)

var listConfig string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the generated interface names",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listConfig, "config", "", "Optional YAML config file")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(listConfig)
	if err != nil {
		return err
	}

	gen := javagen.New(javagen.Options{
		BasePackage: cfg.BasePackage,
		Author:      cfg.Author,
		Reserved:    cfg.Reserved,
	})
	result, err := gen.Generate(cmd.Context())
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, name := range result.Names {
		fmt.Fprintln(out, name)
	}
	fmt.Fprintf(out, "Generated %d files.\n", len(result.Names))
	return nil
}
