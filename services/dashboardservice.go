package services

import (
	"time"

	"frilance/model"

	"github.com/shopspring/decimal"
)

// ComputeDashboardStats derives the dashboard aggregates from fetched
// rows. Revenue counts paid invoices only; hours count entries whose date
// falls in the calendar month of now.
func ComputeDashboardStats(projects []model.Project, clients []model.Client,
	invoices []model.Invoice, expenses []model.Expense, entries []model.TimeEntry,
	now time.Time) model.DashboardStats {

	stats := model.DashboardStats{
		TotalProjects: len(projects),
		TotalClients:  len(clients),
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
	for _, p := range projects {
		if p.Status == model.ProjectInProgress {
			stats.ActiveProjects++
		}
	}
	for _, inv := range invoices {
		switch inv.Status {
		case model.InvoicePaid:
			stats.TotalRevenue = stats.TotalRevenue.Add(inv.Total)
		case model.InvoiceSent, model.InvoiceOverdue:
			stats.PendingInvoices++
		}
	}
	for _, e := range expenses {
		stats.TotalExpenses = stats.TotalExpenses.Add(e.Amount)
	}
	stats.NetProfit = stats.TotalRevenue.Sub(stats.TotalExpenses)

	y, m, _ := now.Date()
	for _, e := range entries {
		ey, em, _ := e.Date.Date()
		if ey == y && em == m {
			stats.TotalHoursThisMonth += e.Hours
		}
	}
	return stats
}
