package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tacogips/promptgen/internal/app"
	"github.com/tacogips/promptgen/internal/config"
	"github.com/tacogips/promptgen/internal/debug"
)

// Global flags
var (
	globalRoot    string
	globalConfig  string
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
)

// Generate flags
var generateDryRun bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "promptgen",
	Short: "Render Liquid prompt templates into Markdown files",
	Long: `promptgen renders every *.liquid file under <root>/templates against the
data in <root>/data.json and writes <name>.md into the parent of <root>.

Templates may include partials by path relative to <root>:
  {% include 'partials/header.liquid' %}

A template that fails to render is reported and skipped; the remaining
templates are still generated. Output files are named after the template's
base name only, so templates in different subdirectories with the same
name write the same file (the later one wins, and a warning is printed).

Examples:
  promptgen
  promptgen --root ./prompts/src
  promptgen --dry-run
  promptgen list`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)
		setOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
	RunE: runGenerate,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalRoot, FlagRoot, "", DescRoot)
	rootCmd.PersistentFlags().StringVarP(&globalConfig, FlagConfig, "c", "", DescConfig)
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)

	rootCmd.Flags().BoolVarP(&generateDryRun, FlagDryRun, "n", false, DescDryRun)

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig resolves the run configuration from the global flags.
func resolveConfig() (*config.Config, error) {
	cfg, err := config.Resolve(config.ResolveOptions{
		Root:       globalRoot,
		ConfigFile: globalConfig,
	})
	if err != nil {
		return nil, app.NewAppError(app.ConfigFailed, "failed to resolve configuration", err)
	}
	return cfg, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	result, err := app.Generate(cmd.Context(), app.GenerateOptions{
		Config:   cfg,
		Reporter: newConsoleReporter(generateDryRun),
		DryRun:   generateDryRun,
	})
	if err != nil {
		return err
	}

	if generateDryRun {
		for _, f := range result.DryRunFiles {
			printVerbose(true, fmt.Sprintf("%s <- %s (%s)", f.Path, f.Template, formatBytes(int64(len(f.Content)))))
		}
	}
	return nil
}

// printError prints an error message to stderr
func printError(err error) {
	fmt.Fprintf(errOut, "Error: %v\n", err)
}
