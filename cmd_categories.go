package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/spf13/cobra"
)

// categoriesGetter defines the interface for fetching categories.
type categoriesGetter interface {
	Categories(ctx context.Context) ([]string, error)
}

// categoriesListCommand encapsulates the dependencies for the categories command.
type categoriesListCommand struct {
	d *deps
}

// newCategoriesCmd creates the `transaction categories` command.
func newCategoriesCmd(d *deps) *cobra.Command {
	c := categoriesListCommand{d: d}

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List transaction categories",
		Long:  `List the categories known to the API, sorted by name.`,
		RunE:  c.run,
	}
	addOutputFlag(cmd)

	return cmd
}

func (c categoriesListCommand) run(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	categories, err := fetchCategories(cmd.Context(), c.d.transactions)
	if err != nil {
		return err
	}

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd.OutOrStdout(), categories)
	default:
		return outputCategoriesTable(cmd.OutOrStdout(), categories)
	}
}

// fetchCategories returns the sorted, de-duplicated categories.
func fetchCategories(ctx context.Context, getter categoriesGetter) ([]string, error) {
	categories, err := getter.Categories(ctx)
	if err != nil {
		return nil, authHint(fmt.Errorf("failed to fetch categories: %w", err))
	}

	categories = slices.Clone(categories)
	slices.Sort(categories)
	return slices.Compact(categories), nil
}

func outputCategoriesTable(w io.Writer, categories []string) error {
	t := createStyledTable("#", "NAME")

	for i, category := range categories {
		t.Row(strconv.Itoa(i+1), category)
	}

	fmt.Fprintln(w, t)
	return nil
}
