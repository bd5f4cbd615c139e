package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	"github.com/rshep3087/ledgerly/api"
	"github.com/rshep3087/ledgerly/overview"
	"github.com/rshep3087/ledgerly/validation"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// transactionCommand encapsulates the dependencies of the transaction subcommands.
type transactionCommand struct {
	d *deps
}

// newTransactionCmd creates the transaction command tree.
func newTransactionCmd(d *deps) *cobra.Command {
	c := transactionCommand{d: d}

	cmd := &cobra.Command{
		Use:   "transaction",
		Short: "Transaction management commands",
		Long:  `Commands for listing, creating and editing transactions.`,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		RunE:  c.list,
	}
	listCmd.Flags().String("type", "", "filter by type (income or expense)")
	listCmd.Flags().String("category", "", "filter by category")
	listCmd.Flags().String("start-date", "", "earliest date (YYYY-MM-DD)")
	listCmd.Flags().String("end-date", "", "latest date (YYYY-MM-DD)")
	listCmd.Flags().String("search", "", "search descriptions")
	listCmd.Flags().String("period", "", "limit to the current month or year (overrides dates)")
	listCmd.Flags().Int("page", 1, "page number")
	listCmd.Flags().Int("limit", defaultPageLimit, "transactions per page")
	addOutputFlag(listCmd)

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one transaction",
		Args:  cobra.ExactArgs(1),
		RunE:  c.get,
	}
	addOutputFlag(getCmd)

	insertCmd := &cobra.Command{
		Use:   "insert",
		Short: "Insert a new transaction",
		Long: `Validate and insert a new transaction. Nothing is sent to the API
when validation fails.`,
		RunE: c.insert,
	}
	addTransactionFlags(insertCmd)
	insertCmd.Flags().Bool("check-budget", false, "warn when an expense would exceed its budget")
	addOutputFlag(insertCmd)

	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a transaction",
		Args:  cobra.ExactArgs(1),
		RunE:  c.update,
	}
	addTransactionFlags(updateCmd)
	addOutputFlag(updateCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE:  c.delete,
	}
	deleteCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")

	checkBudgetCmd := &cobra.Command{
		Use:   "check-budget",
		Short: "Check whether an expense fits the category budget",
		RunE:  c.checkBudget,
	}
	checkBudgetCmd.Flags().String("category", "", "budget category (required)")
	checkBudgetCmd.Flags().String("amount", "", "expense amount (required)")
	addOutputFlag(checkBudgetCmd)

	suggestCmd := &cobra.Command{
		Use:   "suggest-category",
		Short: "Suggest a category for a transaction",
		Long:  `Ask Anthropic's Claude for the best category. Requires ANTHROPIC_API_KEY.`,
		RunE:  c.suggestCategory,
	}
	suggestCmd.Flags().String("type", string(validation.TransactionTypeExpense), "income or expense")
	suggestCmd.Flags().String("amount", "", "transaction amount")
	suggestCmd.Flags().String("description", "", "transaction description (required)")
	addOutputFlag(suggestCmd)

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize income and spending for a month or year",
		RunE:  c.summary,
	}
	summaryCmd.Flags().String("period", monthlyPeriodType, "month or year")
	summaryCmd.Flags().Int("offset", 0, "periods back from the current one (e.g. -1 for last month)")
	addOutputFlag(summaryCmd)

	newCmd := &cobra.Command{
		Use:   "new",
		Short: "Create a transaction with an interactive form",
		RunE:  c.newInteractive,
	}

	cmd.AddCommand(listCmd, getCmd, insertCmd, updateCmd, deleteCmd,
		checkBudgetCmd, suggestCmd, summaryCmd, newCmd, newCategoriesCmd(d))
	return cmd
}

func addTransactionFlags(cmd *cobra.Command) {
	cmd.Flags().String("type", "", "income or expense (required)")
	cmd.Flags().String("amount", "", "amount, at least 0.05 (required)")
	cmd.Flags().String("category", "", "category (required)")
	cmd.Flags().String("description", "", "optional description, up to 90 characters")
	cmd.Flags().String("date", time.Now().Format(dateLayout), "transaction date (YYYY-MM-DD, defaults to today)")
}

// transactionFields reads the form fields from the command flags.
func transactionFields(cmd *cobra.Command) validation.Fields {
	fields := validation.Fields{}
	for _, name := range []string{
		validation.FieldType,
		validation.FieldAmount,
		validation.FieldCategory,
		validation.FieldDescription,
	} {
		v, _ := cmd.Flags().GetString(name)
		fields[name] = v
	}
	return fields
}

// transactionInput converts validated fields into a request body.
func transactionInput(fields validation.Fields, date string) (api.TransactionInput, error) {
	amount, err := requestAmount(fields[validation.FieldAmount])
	if err != nil {
		return api.TransactionInput{}, err
	}

	in := api.TransactionInput{
		Type:        fmt.Sprint(fields[validation.FieldType]),
		Amount:      amount,
		Category:    fmt.Sprint(fields[validation.FieldCategory]),
		Description: strings.TrimSpace(fmt.Sprint(fields[validation.FieldDescription])),
	}

	if date != "" {
		d, err := time.Parse(dateLayout, date)
		if err != nil {
			return api.TransactionInput{}, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", date)
		}
		in.Date = &d
	}

	return in, nil
}

// requestAmount parses an amount that has to survive JSON encoding.
func requestAmount(v any) (float64, error) {
	amount, ok := validation.ParseAmount(v)
	if !ok || math.IsInf(amount, 0) {
		return 0, errors.New(validation.InvalidAmount)
	}
	return amount, nil
}

// validatedInput runs the form validator over the flags and builds the body.
func validatedInput(cmd *cobra.Command) (api.TransactionInput, error) {
	fields := transactionFields(cmd)

	result := validation.ValidateTransactionForm(fields)
	if !result.IsValid() {
		log.Debug("transaction form rejected", "summary", result.Summary())
		return api.TransactionInput{}, result.Err()
	}

	date, _ := cmd.Flags().GetString("date")
	return transactionInput(fields, date)
}

func (c transactionCommand) list(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	filters, err := listFilters(cmd)
	if err != nil {
		return err
	}

	page, err := c.d.transactions.List(cmd.Context(), filters)
	if err != nil {
		return authHint(fmt.Errorf("failed to list transactions: %w", err))
	}

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd.OutOrStdout(), page)
	default:
		if err := outputTransactionsTable(cmd.OutOrStdout(), page.Transactions, c.d.cfg.Currency); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Page %d of %d (%d transactions)\n", page.Page, page.TotalPages, page.Total)
		return nil
	}
}

func listFilters(cmd *cobra.Command) (api.TransactionFilters, error) {
	var f api.TransactionFilters

	f.Type, _ = cmd.Flags().GetString("type")
	if f.Type != "" {
		if r := validation.ValidateTransactionType(f.Type); !r.IsValid() {
			return f, errors.New(r.Error)
		}
	}

	f.Category, _ = cmd.Flags().GetString("category")
	f.Search, _ = cmd.Flags().GetString("search")
	f.Page, _ = cmd.Flags().GetInt("page")
	f.Limit, _ = cmd.Flags().GetInt("limit")

	for flag, dst := range map[string]*time.Time{"start-date": &f.StartDate, "end-date": &f.EndDate} {
		s, _ := cmd.Flags().GetString(flag)
		if s == "" {
			continue
		}
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			return f, fmt.Errorf("invalid %s: %s (expected YYYY-MM-DD)", flag, s)
		}
		*dst = d
	}

	if kind, _ := cmd.Flags().GetString("period"); kind != "" {
		p, err := newPeriod(time.Now(), kind, 0)
		if err != nil {
			return f, err
		}
		p.apply(&f)
	}

	if !f.StartDate.IsZero() && !f.EndDate.IsZero() && f.EndDate.Before(f.StartDate) {
		return f, errors.New("end-date is before start-date")
	}

	return f, nil
}

func (c transactionCommand) get(cmd *cobra.Command, args []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	t, err := c.d.transactions.Get(cmd.Context(), args[0])
	if err != nil {
		if api.IsNotFound(err) {
			return fmt.Errorf("transaction %s not found", args[0])
		}
		return authHint(fmt.Errorf("failed to get transaction: %w", err))
	}

	return outputTransaction(cmd, outputFormat, t, c.d.cfg.Currency)
}

func (c transactionCommand) insert(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	in, err := validatedInput(cmd)
	if err != nil {
		return err
	}

	if check, _ := cmd.Flags().GetBool("check-budget"); check && in.Type == string(validation.TransactionTypeExpense) {
		c.warnBudget(cmd, in)
	}

	log.Debug("inserting transaction", "input", in)

	t, err := c.d.transactions.Create(cmd.Context(), in)
	if err != nil {
		return authHint(fmt.Errorf("failed to insert transaction: %w", err))
	}

	log.Infof("Transaction inserted successfully with ID: %s", t.ID)
	return outputTransaction(cmd, outputFormat, t, c.d.cfg.Currency)
}

// warnBudget logs a warning when the expense would exceed its budget. A
// failed check does not block the insert.
func (c transactionCommand) warnBudget(cmd *cobra.Command, in api.TransactionInput) {
	check, err := c.d.transactions.CheckBudget(cmd.Context(), in.Category, in.Amount)
	if err != nil {
		log.Warn("budget check failed", "error", err)
		return
	}
	if check.WouldExceed {
		log.Warn("this expense exceeds the budget",
			"category", check.Category,
			"remaining", formatAmount(check.Remaining, c.d.cfg.Currency))
	}
}

func (c transactionCommand) update(cmd *cobra.Command, args []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	in, err := validatedInput(cmd)
	if err != nil {
		return err
	}

	t, err := c.d.transactions.Update(cmd.Context(), args[0], in)
	if err != nil {
		if api.IsNotFound(err) {
			return fmt.Errorf("transaction %s not found", args[0])
		}
		return authHint(fmt.Errorf("failed to update transaction: %w", err))
	}

	return outputTransaction(cmd, outputFormat, t, c.d.cfg.Currency)
}

func (c transactionCommand) delete(cmd *cobra.Command, args []string) error {
	id := args[0]

	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		if !isTerminal(cmd.InOrStdin()) {
			return errors.New("refusing to delete without confirmation (use --yes)")
		}
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Delete transaction %s?", id)).
			Value(&yes).
			Run()
		if err != nil {
			return fmt.Errorf("failed to confirm: %w", err)
		}
		if !yes {
			return nil
		}
	}

	if err := c.d.transactions.Delete(cmd.Context(), id); err != nil {
		if api.IsNotFound(err) {
			return fmt.Errorf("transaction %s not found", id)
		}
		return authHint(fmt.Errorf("failed to delete transaction: %w", err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted transaction %s\n", id)
	return nil
}

func (c transactionCommand) checkBudget(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	category, _ := cmd.Flags().GetString("category")
	amountStr, _ := cmd.Flags().GetString("amount")

	if r := validation.ValidateCategory(category); !r.IsValid() {
		return errors.New(r.Error)
	}
	if r := validation.ValidateAmount(amountStr); !r.IsValid() {
		return errors.New(r.Error)
	}
	amount, err := requestAmount(amountStr)
	if err != nil {
		return err
	}

	check, err := c.d.transactions.CheckBudget(cmd.Context(), category, amount)
	if err != nil {
		return authHint(fmt.Errorf("failed to check budget: %w", err))
	}

	if outputFormat == jsonOutputFormat {
		return outputJSON(cmd.OutOrStdout(), check)
	}
	return outputBudgetCheck(cmd.OutOrStdout(), check, c.d.cfg.Currency)
}

func (c transactionCommand) suggestCategory(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	fields := transactionFields(cmd)
	if r := validation.ValidateTransactionType(fields[validation.FieldType]); !r.IsValid() {
		return errors.New(r.Error)
	}
	if r := validation.ValidateDescription(fields[validation.FieldDescription]); !r.IsValid() {
		return errors.New(r.Error)
	}
	description := strings.TrimSpace(fmt.Sprint(fields[validation.FieldDescription]))
	if description == "" {
		return errors.New(validation.Required(validation.FieldDescription))
	}

	in := api.TransactionInput{
		Type:        fmt.Sprint(fields[validation.FieldType]),
		Description: description,
	}
	if amount, err := requestAmount(fields[validation.FieldAmount]); err == nil {
		in.Amount = amount
	}

	categories, err := fetchCategories(cmd.Context(), c.d.transactions)
	if err != nil {
		return err
	}

	rec, err := c.d.recommender.Recommend(cmd.Context(), in, categories)
	if err != nil {
		return fmt.Errorf("failed to suggest a category: %w", err)
	}

	if outputFormat == jsonOutputFormat {
		return outputJSON(cmd.OutOrStdout(), rec)
	}

	t := createStyledTable("CATEGORY", "CONFIDENCE", "REASONING")
	t.Row(rec.Category, fmt.Sprintf("%.0f%%", rec.Confidence), rec.Reasoning)
	fmt.Fprintln(cmd.OutOrStdout(), t)
	return nil
}

var titleCaser = cases.Title(language.English)

// formatAmount renders amount in the configured currency.
func formatAmount(amount float64, currency string) string {
	return overview.Amount(amount, currency).Display()
}

func outputTransaction(cmd *cobra.Command, outputFormat string, t *api.Transaction, currency string) error {
	if outputFormat == jsonOutputFormat {
		return outputJSON(cmd.OutOrStdout(), t)
	}
	return outputTransactionsTable(cmd.OutOrStdout(), []api.Transaction{*t}, currency)
}

func outputTransactionsTable(w io.Writer, transactions []api.Transaction, currency string) error {
	st := createStyles(defaultTheme())
	t := createStyledTable("ID", "DATE", "TYPE", "CATEGORY", "DESCRIPTION", "AMOUNT")

	for _, tx := range transactions {
		description := tx.Description
		if description == "" {
			description = "-"
		}
		t.Row(
			tx.ID,
			tx.Date.Format(dateLayout),
			titleCaser.String(tx.Type),
			tx.Category,
			description,
			st.typeStyle(tx.Type).Render(formatAmount(tx.Amount, currency)),
		)
	}

	fmt.Fprintln(w, t)
	return nil
}

func outputBudgetCheck(w io.Writer, check *api.BudgetCheck, currency string) error {
	st := createStyles(defaultTheme())

	if !check.HasBudget {
		fmt.Fprintln(w, st.mutedStyle.Render(fmt.Sprintf("No budget set for %s", check.Category)))
		return nil
	}

	t := createStyledTable("FIELD", "VALUE")
	t.Row("Category", check.Category)
	t.Row("Budget", formatAmount(check.Budget, currency))
	t.Row("Spent", formatAmount(check.Spent, currency))
	t.Row("Remaining", formatAmount(check.Remaining, currency))
	t.Row("Used", fmt.Sprintf("%.1f%%", check.PercentUsed))
	fmt.Fprintln(w, t)

	switch {
	case check.WouldExceed:
		fmt.Fprintln(w, st.warningStyle.Render(budgetMessage(check, "This expense would exceed the budget")))
	default:
		fmt.Fprintln(w, st.successStyle.Render(budgetMessage(check, "This expense fits the budget")))
	}
	return nil
}

func budgetMessage(check *api.BudgetCheck, fallback string) string {
	if check.Message != "" {
		return check.Message
	}
	return fallback
}
