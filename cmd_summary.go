package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rshep3087/ledgerly/api"
	"github.com/rshep3087/ledgerly/overview"
	"github.com/spf13/cobra"
)

// maxSummaryPages bounds how many pages a summary will fetch.
const maxSummaryPages = 50

func (c transactionCommand) summary(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	kind, _ := cmd.Flags().GetString("period")
	offset, _ := cmd.Flags().GetInt("offset")

	period, err := newPeriod(time.Now(), kind, offset)
	if err != nil {
		return err
	}

	transactions, err := listAll(cmd.Context(), c.d.transactions, period)
	if err != nil {
		return authHint(fmt.Errorf("failed to list transactions: %w", err))
	}

	s := overview.Summarize(transactions, c.d.cfg.Currency)
	if outputFormat == jsonOutputFormat {
		return outputJSON(cmd.OutOrStdout(), s)
	}

	fmt.Fprintln(cmd.OutOrStdout(), s.Render(overview.DefaultStyles(), period.String()))
	return nil
}

// listAll fetches every page of transactions in period.
func listAll(ctx context.Context, lister transactionsAPI, period Period) ([]api.Transaction, error) {
	filters := api.TransactionFilters{Page: 1, Limit: defaultPageLimit * 5}
	period.apply(&filters)

	var all []api.Transaction
	for ; filters.Page <= maxSummaryPages; filters.Page++ {
		page, err := lister.List(ctx, filters)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Transactions...)

		log.Debug("fetched transactions page", "page", page.Page, "total_pages", page.TotalPages)
		if page.TotalPages <= filters.Page || len(page.Transactions) == 0 {
			return all, nil
		}
	}

	log.Warn("summary truncated", "pages", maxSummaryPages)
	return all, nil
}
