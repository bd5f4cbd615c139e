// Package overview aggregates transactions into income, spending and
// per-category totals for display.
package overview

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/rshep3087/ledgerly/api"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Amount converts a decimal amount into money, rounded to the minor unit of
// currency.
func Amount(amount float64, currency string) *money.Money {
	fraction := 2
	if c := money.GetCurrency(currency); c != nil {
		fraction = c.Fraction
	}
	return money.New(int64(math.Round(amount*math.Pow10(fraction))), currency)
}

// CategoryTotal is the sum of one category on one side of the ledger.
type CategoryTotal struct {
	Category string       `json:"category"`
	Total    *money.Money `json:"total"`
	Percent  float64      `json:"percent"`
}

// Summary is the aggregate of a set of transactions.
type Summary struct {
	Currency     string          `json:"currency"`
	Transactions int             `json:"transactions"`
	Income       *money.Money    `json:"income"`
	Spent        *money.Money    `json:"spent"`
	Net          *money.Money    `json:"net"`
	Earning      []CategoryTotal `json:"earning"`
	Spending     []CategoryTotal `json:"spending"`
}

// Summarize totals transactions in currency. Transactions of an unknown type
// are not counted.
func Summarize(transactions []api.Transaction, currency string) Summary {
	s := Summary{
		Currency: currency,
		// zero amounts so the currency is always set
		Income: money.New(0, currency),
		Spent:  money.New(0, currency),
	}

	earning := map[string]*money.Money{}
	spending := map[string]*money.Money{}

	for _, t := range transactions {
		amount := Amount(t.Amount, currency).Absolute()

		var totals map[string]*money.Money
		switch t.Type {
		case "income":
			s.Income, _ = s.Income.Add(amount)
			totals = earning
		case "expense":
			s.Spent, _ = s.Spent.Add(amount)
			totals = spending
		default:
			continue
		}
		s.Transactions++

		if _, ok := totals[t.Category]; !ok {
			totals[t.Category] = money.New(0, currency)
		}
		totals[t.Category], _ = totals[t.Category].Add(amount)
	}

	s.Net, _ = s.Income.Subtract(s.Spent)
	s.Earning = breakdown(earning, s.Income)
	s.Spending = breakdown(spending, s.Spent)

	return s
}

// breakdown sorts totals by amount, largest first, with ties by name.
func breakdown(totals map[string]*money.Money, sum *money.Money) []CategoryTotal {
	rows := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		var percent float64
		if sum.Amount() != 0 {
			percent = float64(total.Amount()) / float64(sum.Amount()) * 100
		}
		rows = append(rows, CategoryTotal{Category: category, Total: total, Percent: percent})
	}

	slices.SortFunc(rows, func(a, b CategoryTotal) int {
		if c := cmp.Compare(b.Total.Amount(), a.Total.Amount()); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})

	return rows
}

// Styles of the rendered overview.
type Styles struct {
	IncomeStyle   lipgloss.Style
	SpentStyle    lipgloss.Style
	TreeRootStyle lipgloss.Style
	SummaryStyle  lipgloss.Style
}

// DefaultStyles returns the standard overview styles.
func DefaultStyles() Styles {
	return Styles{
		IncomeStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00")),
		SpentStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		TreeRootStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#828282")),
		SummaryStyle:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
	}
}

// Tree renders the category breakdown with income and expense branches.
func (s Summary) Tree(styles Styles) *tree.Tree {
	t := tree.New().Root(styles.TreeRootStyle.Render("Categories"))

	for _, side := range []struct {
		name  string
		rows  []CategoryTotal
		style lipgloss.Style
	}{
		{"income", s.Earning, styles.IncomeStyle},
		{"expense", s.Spending, styles.SpentStyle},
	} {
		if len(side.rows) == 0 {
			continue
		}
		branch := tree.New().Root(titleCaser.String(side.name))
		for _, r := range side.rows {
			branch.Child(fmt.Sprintf("%s %s (%.1f%%)", r.Category, side.style.Render(r.Total.Display()), r.Percent))
		}
		t.Child(branch)
	}

	return t
}

// Render returns the totals box next to the category tree.
func (s Summary) Render(styles Styles, title string) string {
	totals := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(title),
		"",
		fmt.Sprintf("Income: %s", styles.IncomeStyle.Render(s.Income.Display())),
		fmt.Sprintf("Spent:  %s", styles.SpentStyle.Render(s.Spent.Display())),
		fmt.Sprintf("Net:    %s", s.Net.Display()),
		fmt.Sprintf("Transactions: %d", s.Transactions),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		styles.SummaryStyle.Render(totals),
		styles.SummaryStyle.Render(s.Tree(styles).String()),
	)
}
