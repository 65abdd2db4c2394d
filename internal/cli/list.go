package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tacogips/promptgen/internal/app"
	"github.com/tacogips/promptgen/internal/template/generator"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List templates and the files they render to",
	Long: `List every template that would be rendered, with its output path.
Nothing is rendered or written.

Examples:
  promptgen list
  promptgen list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, FlagJSON, false, DescJSON)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	result, err := app.List(cfg)
	if err != nil {
		return err
	}

	if listJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal template list: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if result.TemplatesMissing {
		printInfo(generator.TemplatesNotFoundLine(cfg.TemplatesRoot))
		return nil
	}
	for _, e := range result.Entries {
		fmt.Fprintf(out, "%s -> %s\n", e.Template, e.Output)
	}
	for _, c := range result.Collisions {
		printWarning(generator.CollisionLine(c))
	}
	return nil
}
