package overview

import (
	"strings"
	"testing"

	"github.com/carlmjohnson/be"
	"github.com/rshep3087/ledgerly/api"
)

func TestSummarize(t *testing.T) {
	transactions := []api.Transaction{
		{Type: "income", Amount: 2500, Category: "Salary"},
		{Type: "expense", Amount: 40.5, Category: "Food"},
		{Type: "expense", Amount: 59.5, Category: "Food"},
		{Type: "expense", Amount: 900, Category: "Rent"},
		{Type: "income", Amount: 100, Category: "Gifts"},
		{Type: "transfer", Amount: 1000, Category: "Savings"},
	}

	s := Summarize(transactions, "USD")

	be.Equal(t, 5, s.Transactions)
	be.Equal(t, int64(260000), s.Income.Amount())
	be.Equal(t, int64(100000), s.Spent.Amount())
	be.Equal(t, int64(160000), s.Net.Amount())

	be.Equal(t, 2, len(s.Spending))
	be.Equal(t, "Rent", s.Spending[0].Category)
	be.Equal(t, 90.0, s.Spending[0].Percent)
	be.Equal(t, "Food", s.Spending[1].Category)
	be.Equal(t, int64(10000), s.Spending[1].Total.Amount())

	be.Equal(t, 2, len(s.Earning))
	be.Equal(t, "Salary", s.Earning[0].Category)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, "EUR")

	be.Equal(t, 0, s.Transactions)
	be.Equal(t, int64(0), s.Net.Amount())
	be.Equal(t, "EUR", s.Net.Currency().Code)
	be.Equal(t, 0, len(s.Spending))
}

func TestSummarizeTiesSortByName(t *testing.T) {
	s := Summarize([]api.Transaction{
		{Type: "expense", Amount: 10, Category: "Books"},
		{Type: "expense", Amount: 10, Category: "Apps"},
	}, "USD")

	be.Equal(t, "Apps", s.Spending[0].Category)
	be.Equal(t, "Books", s.Spending[1].Category)
	be.Equal(t, 50.0, s.Spending[0].Percent)
}

func TestRender(t *testing.T) {
	s := Summarize([]api.Transaction{
		{Type: "income", Amount: 100, Category: "Salary"},
		{Type: "expense", Amount: 25, Category: "Food"},
	}, "USD")

	out := s.Render(DefaultStyles(), "2024-01-01 - 2024-01-31")

	be.True(t, strings.Contains(out, "2024-01-01 - 2024-01-31"))
	be.True(t, strings.Contains(out, "Salary"))
	be.True(t, strings.Contains(out, "Food"))
	be.True(t, strings.Contains(out, "Expense"))
	be.True(t, strings.Contains(out, "Transactions: 2"))
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		currency string
		minor    int64
	}{
		{name: "cents", amount: 9.99, currency: "USD", minor: 999},
		{name: "rounds float error", amount: 0.29, currency: "USD", minor: 29},
		{name: "no minor unit", amount: 1500, currency: "JPY", minor: 1500},
		{name: "negative", amount: -12.34, currency: "EUR", minor: -1234},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be.Equal(t, tt.minor, Amount(tt.amount, tt.currency).Amount())
		})
	}
}
