package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rshep3087/ledgerly/validation"
	"github.com/spf13/cobra"
)

// formSpec describes an offline validate subcommand.
type formSpec struct {
	use      string
	short    string
	fields   []string
	validate func(validation.Fields) validation.FormResult
}

// flagName maps a form field to its kebab-case flag.
func flagName(field string) string {
	if field == validation.FieldDueDay {
		return "due-day"
	}
	return field
}

// newValidateCmd creates the offline validate command tree.
func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate form input without contacting the API",
		Long: `Run the same checks the API forms use. The command fails with the
field errors when the input is invalid.`,
	}

	forms := []formSpec{
		{
			use:   "transaction",
			short: "Validate a transaction",
			fields: []string{
				validation.FieldType, validation.FieldAmount,
				validation.FieldCategory, validation.FieldDescription,
			},
			validate: validation.ValidateTransactionForm,
		},
		{
			use:   "budget",
			short: "Validate a budget",
			fields: []string{
				validation.FieldCategory, validation.FieldAmount, validation.FieldTitle,
			},
			validate: validation.ValidateBudgetForm,
		},
		{
			use:   "planned-payment",
			short: "Validate a planned payment",
			fields: []string{
				validation.FieldTitle, validation.FieldType, validation.FieldAmount,
				validation.FieldCategory, validation.FieldDueDay,
			},
			validate: validation.ValidatePlannedPaymentForm,
		},
	}

	for _, f := range forms {
		cmd.AddCommand(newValidateFormCmd(f))
	}

	limitsCmd := &cobra.Command{
		Use:   "limits",
		Short: "Show the limits forms are checked against",
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputFormat, err := validateOutputFormat(cmd)
			if err != nil {
				return err
			}
			if outputFormat == jsonOutputFormat {
				return outputJSON(cmd.OutOrStdout(), validation.DefaultLimits())
			}
			return outputLimitsTable(cmd.OutOrStdout(), validation.DefaultLimits())
		},
	}
	addOutputFlag(limitsCmd)
	cmd.AddCommand(limitsCmd)

	return cmd
}

func newValidateFormCmd(f formSpec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   f.use,
		Short: f.short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputFormat, err := validateOutputFormat(cmd)
			if err != nil {
				return err
			}

			data := validation.Fields{}
			for _, field := range f.fields {
				v, _ := cmd.Flags().GetString(flagName(field))
				data[field] = v
			}

			result := f.validate(data)
			if outputFormat == jsonOutputFormat {
				if err := outputJSON(cmd.OutOrStdout(), result); err != nil {
					return err
				}
			} else {
				outputFormResult(cmd.OutOrStdout(), result)
			}

			if !result.IsValid() {
				return errors.New(result.Summary())
			}
			return nil
		},
	}

	for _, field := range f.fields {
		cmd.Flags().String(flagName(field), "", validation.Label(field))
	}
	addOutputFlag(cmd)

	return cmd
}

func outputFormResult(w io.Writer, result validation.FormResult) {
	st := createStyles(defaultTheme())

	if result.IsValid() {
		fmt.Fprintln(w, st.successStyle.Render("✓ valid"))
		return
	}

	t := createStyledTable("FIELD", "ERROR")
	for _, field := range result.Fields() {
		t.Row(validation.Label(field), result.Error(field))
	}
	fmt.Fprintln(w, t)
}

func outputLimitsTable(w io.Writer, l validation.Limits) error {
	amount := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

	t := createStyledTable("FORM", "LIMIT", "VALUE")
	t.Row("Transaction", "Minimum amount", amount(l.Transaction.MinAmount))
	t.Row("Transaction", "Maximum description length", strconv.Itoa(l.Transaction.MaxDescriptionLength))
	t.Row("Budget", "Minimum amount", amount(l.Budget.MinAmount))
	t.Row("Budget", "Maximum title length", strconv.Itoa(l.Budget.MaxTitleLength))
	t.Row("Planned payment", "Minimum amount", amount(l.PlannedPayment.MinAmount))
	t.Row("Planned payment", "Maximum title length", strconv.Itoa(l.PlannedPayment.MaxTitleLength))
	t.Row("Planned payment", "Due day", fmt.Sprintf("%d-%d", l.PlannedPayment.MinDueDay, l.PlannedPayment.MaxDueDay))
	t.Row("User", "Minimum password length", strconv.Itoa(l.User.MinPasswordLength))
	t.Row("User", "Maximum name length", strconv.Itoa(l.User.MaxNameLength))

	fmt.Fprintln(w, t)
	return nil
}
