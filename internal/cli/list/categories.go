package list

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"utest/internal/collector"
	"utest/pkg/utest/core"
	"utest/pkg/utest/utils"
)

type ListCategoriesCmd struct {
	Json bool `short:"j" long:"json" help:"Output the category hierarchy in JSON format"`
}

func (cmd *ListCategoriesCmd) Run(suite core.SuiteContext) error {
	return cmd.list(suite, os.Stdout)
}

func (cmd *ListCategoriesCmd) list(suite core.SuiteContext, out io.Writer) error {
	log := suite.Logger()
	log.Info("Listing categories")

	inv := collector.Collect(suite.Tests())

	if cmd.Json {
		return outputCategoriesAsJson(out, inv.Categories)
	}

	for _, category := range inv.Categories {
		if category == "" {
			continue
		}
		fmt.Fprintln(out, category)
	}

	return nil
}

func outputCategoriesAsJson(out io.Writer, categories []string) error {
	tree := utils.NewPathTree()
	for _, category := range categories {
		if category != "" {
			tree.Add(category)
		}
	}

	data, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal categories to JSON: %w", err)
	}

	fmt.Fprintln(out, string(data))
	return nil
}
