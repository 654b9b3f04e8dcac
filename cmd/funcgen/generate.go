package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dkleszyk/java-function-extra/javagen"
)

var (
	generateOutput string
	generateVerify bool
	generateClean  bool
	generateConfig string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the Java source tree",
	Long: `Generate every interface and write the .java files under the output
root, laid out by package directory.

With --verify no files are written; the generated bytes are diffed
against what is on disk and any mismatch fails the command. With
--clean the base package directory is removed before writing, so files
for interfaces that no longer exist do not linger.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "src/main/java", "Output root for the generated tree")
	generateCmd.Flags().BoolVar(&generateVerify, "verify", false, "Diff generated files against disk instead of writing")
	generateCmd.Flags().BoolVar(&generateClean, "clean", false, "Remove the base package directory before writing")
	generateCmd.Flags().StringVar(&generateConfig, "config", "", "Optional YAML config file")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	cfg, err := loadConfig(generateConfig)
	if err != nil {
		return err
	}

	output := generateOutput
	if cfg.Output != "" && !cmd.Flags().Changed("output") {
		output = cfg.Output
	}
	basePackage := cfg.BasePackage
	if basePackage == "" {
		basePackage = javagen.DefaultBasePackage
	}

	if generateVerify && generateClean {
		return fmt.Errorf("--verify and --clean are mutually exclusive")
	}

	start := time.Now()
	gen := javagen.New(javagen.Options{
		BasePackage: basePackage,
		Author:      cfg.Author,
		Reserved:    cfg.Reserved,
	})
	result, err := gen.Generate(cmd.Context())
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if generateVerify {
		if err := result.FS.Verify(cmd.Context(), output); err != nil {
			return fmt.Errorf("generated code is out of sync with %s, run funcgen generate: %w", output, err)
		}
		log.Infow("Generated tree verified",
			"files", result.FS.Len(),
			"root", output,
			"duration", time.Since(start))
		return nil
	}

	if generateClean {
		pkgDir := filepath.Join(output, filepath.FromSlash(strings.ReplaceAll(basePackage, ".", "/")))
		if err := os.RemoveAll(pkgDir); err != nil {
			return fmt.Errorf("failed to clean %s: %w", pkgDir, err)
		}
		log.Infow("Removed stale package directory", "dir", pkgDir)
	}

	if err := result.FS.Write(cmd.Context(), output); err != nil {
		return fmt.Errorf("failed to write generated files: %w", err)
	}
	log.Infow("Generated Java interfaces",
		"files", result.FS.Len(),
		"root", output,
		"duration", time.Since(start))
	return nil
}
