// Package stats computes the derived financial figures shown on the
// dashboard, the financial summary and the reports page. Everything here is
// a pure function of a collection snapshot: no caching, no incremental
// state. Collections are personal-business sized, so a full re-scan per
// request is fine.
package stats

import "costuras/app/models"

// Summary holds the aggregate figures for the current state of the books.
type Summary struct {
	TotalClients  int     `json:"total_clients"`
	TotalOrders   int     `json:"total_orders"`
	ActiveOrders  int     `json:"active_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
	TotalExpenses float64 `json:"total_expenses"`
	Profit        float64 `json:"profit"`
	ProfitMargin  float64 `json:"profit_margin"`
}

// Compute derives the Summary from full collection snapshots.
// Revenue counts only paid orders; an order is active until delivered.
func Compute(clients []models.Client, orders []models.Order, expenses []models.Expense) Summary {
	s := Summary{
		TotalClients: len(clients),
		TotalOrders:  len(orders),
	}
	for _, o := range orders {
		if o.Status != models.StatusDelivered {
			s.ActiveOrders++
		}
		if o.Paid {
			s.TotalRevenue += o.Price
		}
	}
	for _, e := range expenses {
		s.TotalExpenses += e.Amount
	}
	s.Profit = s.TotalRevenue - s.TotalExpenses
	if s.TotalRevenue > 0 {
		s.ProfitMargin = s.Profit / s.TotalRevenue * 100
	}
	return s
}

// CountByStatus tallies orders per status value for the reports view.
// Free-text statuses appear as their own buckets.
func CountByStatus(orders []models.Order) map[string]int {
	counts := map[string]int{}
	for _, o := range orders {
		counts[o.Status]++
	}
	return counts
}

// TotalByCategory tallies expense amounts per category for the reports view.
func TotalByCategory(expenses []models.Expense) map[string]float64 {
	totals := map[string]float64{}
	for _, e := range expenses {
		totals[e.Category] += e.Amount
	}
	return totals
}
