package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"grocerypro-backend/models"
	"grocerypro-backend/utils"
)

// RevenuePoint is one calendar day of aggregated money flow.
type RevenuePoint struct {
	Date         string          `json:"date"` // YYYY-MM-DD
	Income       decimal.Decimal `json:"income"`
	Outcome      decimal.Decimal `json:"outcome"`
	ClearRevenue decimal.Decimal `json:"clear_revenue"`
}

// RevenueTotals sums the whole series.
type RevenueTotals struct {
	Income       decimal.Decimal `json:"income"`
	Outcome      decimal.Decimal `json:"outcome"`
	ClearRevenue decimal.Decimal `json:"clear_revenue"`
}

// BuildRevenueSeries buckets income transactions and expenses by calendar day
// over [start, end] (inclusive, day granularity) and computes per-day and
// total income, outcome and clear revenue (income - outcome). It is a pure
// function of its inputs: rows outside the window are ignored, days with no
// rows are omitted, and the series is ordered by date ascending.
func BuildRevenueSeries(incomes []models.IncomeTransaction, expenses []models.Expense, start, end time.Time) ([]RevenuePoint, RevenueTotals) {
	windowStart := utils.BeginningOfDay(start)
	windowEnd := utils.EndOfDay(end)

	type bucket struct {
		income  decimal.Decimal
		outcome decimal.Decimal
	}
	buckets := make(map[string]*bucket)

	dayOf := func(t time.Time) *bucket {
		key := t.Format(utils.DayFormat)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		return b
	}

	inWindow := func(t time.Time) bool {
		return !t.Before(windowStart) && !t.After(windowEnd)
	}

	for _, tx := range incomes {
		if !inWindow(tx.TransactionDate) {
			continue
		}
		b := dayOf(tx.TransactionDate)
		b.income = b.income.Add(tx.Amount)
	}
	for _, e := range expenses {
		if !inWindow(e.ExpenseDate) {
			continue
		}
		b := dayOf(e.ExpenseDate)
		b.outcome = b.outcome.Add(e.Amount)
	}

	days := make([]string, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	sort.Strings(days)

	series := make([]RevenuePoint, 0, len(days))
	var totals RevenueTotals
	for _, day := range days {
		b := buckets[day]
		series = append(series, RevenuePoint{
			Date:         day,
			Income:       b.income,
			Outcome:      b.outcome,
			ClearRevenue: b.income.Sub(b.outcome),
		})
		totals.Income = totals.Income.Add(b.income)
		totals.Outcome = totals.Outcome.Add(b.outcome)
	}
	totals.ClearRevenue = totals.Income.Sub(totals.Outcome)

	return series, totals
}
