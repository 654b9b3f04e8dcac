// Command funcgen generates the me.dkleszyk.java.function.extra Java
// source tree: functional interfaces covering the primitive and array
// signature space the JDK's java.util.function package leaves out.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "funcgen",
	Short: "Generate extra Java functional interfaces",
	Long: `funcgen emits @FunctionalInterface declarations for the primitive and
array-segment signatures missing from java.util.function.

Examples:
  funcgen generate                      # Write under src/main/java
  funcgen generate -o /tmp/out          # Write under a custom root
  funcgen generate --verify             # CI mode: diff against disk
  funcgen list                          # Print the interface names`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
