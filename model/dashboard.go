package model

import "github.com/shopspring/decimal"

type DashboardStats struct {
	TotalProjects       int             `json:"totalProjects"`
	ActiveProjects      int             `json:"activeProjects"`
	TotalClients        int             `json:"totalClients"`
	TotalRevenue        decimal.Decimal `json:"totalRevenue"`
	TotalExpenses       decimal.Decimal `json:"totalExpenses"`
	NetProfit           decimal.Decimal `json:"netProfit"`
	PendingInvoices     int             `json:"pendingInvoices"`
	TotalHoursThisMonth float64         `json:"totalHoursThisMonth"`
}
