package entities

// Metric compares a value for the current calendar month with the previous one.
type Metric struct {
	Current  float64
	Previous float64
	Growth   float64
}

type DashboardMetrics struct {
	Clients        Metric
	ActiveOrders   Metric
	MonthlyRevenue Metric
	QualityRate    Metric
}
