package services

import (
	"finsight/internal/aggregate"
	"finsight/internal/models"
)

// topExpenseCount is how many expense categories the analytics view shows.
const topExpenseCount = 5

// dashboardService computes dashboard and analytics figures. Both views run
// through the same aggregation engine over the same transaction set, so the
// classification of any one transaction can never differ between screens.
type dashboardService struct {
	transactions TransactionServicer
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(transactions TransactionServicer) DashboardServicer {
	return &dashboardService{transactions: transactions}
}

// load fetches the user's full transaction set as engine records.
func (s *dashboardService) load(userID string) ([]aggregate.Transaction, error) {
	transactions, err := s.transactions.GetAllUserTransactions(userID)
	if err != nil {
		return nil, err
	}
	return models.Records(transactions), nil
}

// Summary computes the dashboard card totals.
func (s *dashboardService) Summary(userID string) (aggregate.Summary, error) {
	records, err := s.load(userID)
	if err != nil {
		return aggregate.Summary{}, err
	}
	return aggregate.Summarize(records, 0), nil
}

// ChartData computes the monthly line chart and category pie chart, optionally
// narrowed by an exact category or status filter.
func (s *dashboardService) ChartData(userID string, filter GraphFilter) (ChartData, error) {
	records, err := s.load(userID)
	if err != nil {
		return ChartData{}, err
	}

	if filter.Category != "" || filter.Status != "" {
		narrowed := make([]aggregate.Transaction, 0, len(records))
		for _, r := range records {
			if filter.Category != "" && r.Category != filter.Category {
				continue
			}
			if filter.Status != "" && r.Status != filter.Status {
				continue
			}
			narrowed = append(narrowed, r)
		}
		records = narrowed
	}

	return ChartData{
		LineChart: aggregate.BucketByMonth(records),
		PieChart:  aggregate.TotalByCategory(records),
	}, nil
}

// Analytics computes the analytics page payload.
func (s *dashboardService) Analytics(userID string) (AnalyticsReport, error) {
	records, err := s.load(userID)
	if err != nil {
		return AnalyticsReport{}, err
	}

	trend := aggregate.BucketByMonth(records)
	return AnalyticsReport{
		MonthlyTrend:      trend,
		CategoryBreakdown: aggregate.TotalByCategory(records),
		TopExpenses:       aggregate.TopExpenses(records, topExpenseCount),
		SpendChange:       aggregate.MonthlySpendChange(trend),
	}, nil
}
