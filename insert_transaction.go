package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	"github.com/rshep3087/ledgerly/api"
	"github.com/rshep3087/ledgerly/validation"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// transactionForm holds the values bound to the interactive form.
type transactionForm struct {
	Type        string
	Amount      string
	Category    string
	Description string
	Date        string
}

func (f transactionForm) fields() validation.Fields {
	return validation.Fields{
		validation.FieldType:        f.Type,
		validation.FieldAmount:      f.Amount,
		validation.FieldCategory:    f.Category,
		validation.FieldDescription: f.Description,
	}
}

// fieldValidator adapts a single-field validator to huh's Validate.
func fieldValidator(check func(any) validation.FieldResult) func(string) error {
	return func(s string) error {
		if r := check(s); !r.IsValid() {
			return errors.New(r.Error)
		}
		return nil
	}
}

func dateValidator(s string) error {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return errors.New("date must be in YYYY-MM-DD format")
	}
	return nil
}

func newInsertTransactionForm(values *transactionForm, categories []string) *huh.Form {
	typeOpts := make([]huh.Option[string], 0, len(validation.TransactionTypes()))
	for _, t := range validation.TransactionTypes() {
		typeOpts = append(typeOpts, huh.NewOption(titleCaser.String(t.String()), t.String()))
	}

	var categoryField huh.Field
	if len(categories) > 0 {
		categoryOpts := huh.NewOptions(categories...)
		categoryField = huh.NewSelect[string]().
			Title("Category").
			Description("Select a category for the transaction").
			Options(categoryOpts...).
			Value(&values.Category)
	} else {
		categoryField = huh.NewInput().
			Title("Category").
			Description("The category for the transaction").
			Placeholder("e.g. Groceries").
			Validate(fieldValidator(validation.ValidateCategory)).
			Value(&values.Category)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Type").
				Options(typeOpts...).
				Validate(fieldValidator(validation.ValidateTransactionType)).
				Value(&values.Type),

			huh.NewInput().
				Title("Amount").
				Description(fmt.Sprintf("At least %.2f", validation.MinTransactionAmount)).
				Placeholder("0.00").
				Validate(fieldValidator(validation.ValidateAmount)).
				Value(&values.Amount),

			categoryField,
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Description (Optional)").
				Description(fmt.Sprintf("Up to %d characters", validation.MaxDescriptionLength)).
				CharLimit(validation.MaxDescriptionLength*2).
				Validate(fieldValidator(validation.ValidateDescription)).
				Value(&values.Description),

			huh.NewInput().
				Title("Date").
				Description("Transaction date (YYYY-MM-DD)").
				Placeholder(dateLayout).
				Validate(dateValidator).
				Value(&values.Date),
		),
	)
}

// prefetch loads the categories and checks the session concurrently.
func (c transactionCommand) prefetch(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, prefetchTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	var categories []string
	g.Go(func() error {
		cs, err := fetchCategories(ctx, c.d.transactions)
		if err != nil {
			return err
		}
		categories = cs
		return nil
	})

	if c.d.cfg.Token != "" {
		g.Go(func() error {
			resp, err := c.d.auth.Verify(ctx)
			if err != nil {
				return authHint(fmt.Errorf("failed to verify session: %w", err))
			}
			if !resp.Valid {
				return errors.New("session is not valid")
			}
			log.Debug("session verified", "user", resp.User.Email)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c transactionCommand) newInteractive(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	categories, err := c.prefetch(ctx)
	if err != nil {
		return err
	}

	values := transactionForm{
		Type: string(validation.TransactionTypeExpense),
		Date: time.Now().Format(dateLayout),
	}
	if err := newInsertTransactionForm(&values, categories).RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return fmt.Errorf("failed to run form: %w", err)
	}

	fields := values.fields()
	if result := validation.ValidateTransactionForm(fields); !result.IsValid() {
		return errors.New(result.Summary())
	}

	in, err := transactionInput(fields, values.Date)
	if err != nil {
		return err
	}

	currency := c.d.cfg.Currency
	_, err = runSubmit(ctx, cmd.OutOrStdout(), c.d.transactions.Create, in, "Saving transaction",
		func(t *api.Transaction) string {
			return fmt.Sprintf("%s %s in %s (ID %s)",
				titleCaser.String(t.Type), formatAmount(t.Amount, currency), t.Category, t.ID)
		})
	if err != nil {
		if errors.Is(err, errSubmitAborted) {
			return nil
		}
		return authHint(fmt.Errorf("failed to insert transaction: %w", err))
	}

	return nil
}
