package service

import (
	"time"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/engine"
	"github.com/dafibh/fortuna/fortuna-planner/internal/util"
	"golang.org/x/sync/errgroup"
)

// DashboardService builds the overview screen: headline figures, upcoming bills, and advice
type DashboardService struct {
	incomeRepo     domain.IncomeRepository
	expenseRepo    domain.ExpenseRepository
	recurringRepo  domain.RecurringRepository
	investmentRepo domain.InvestmentRepository
	goalRepo       domain.GoalRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	incomeRepo domain.IncomeRepository,
	expenseRepo domain.ExpenseRepository,
	recurringRepo domain.RecurringRepository,
	investmentRepo domain.InvestmentRepository,
	goalRepo domain.GoalRepository,
) *DashboardService {
	return &DashboardService{
		incomeRepo:     incomeRepo,
		expenseRepo:    expenseRepo,
		recurringRepo:  recurringRepo,
		investmentRepo: investmentRepo,
		goalRepo:       goalRepo,
	}
}

// GetSummary returns the dashboard as of the given day
func (s *DashboardService) GetSummary(workspaceID int32, asOf time.Time) (*domain.DashboardSummary, error) {
	day := util.DateOnly(asOf)

	snapshot, err := s.loadSnapshot(workspaceID, day)
	if err != nil {
		return nil, err
	}

	facts, err := engine.BuildFacts(*snapshot, day)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardSummary{
		Facts:           facts,
		SavingsRate:     engine.SavingsRate(facts),
		EmergencyMonths: engine.EmergencyFundMonths(facts),
		Portfolio:       engine.PortfolioPerformance(snapshot.Investments),
		Upcoming:        engine.UpcomingObligations(snapshot.Recurring, day),
		Recommendations: engine.Recommend(facts),
	}, nil
}

// loadSnapshot reads the records the dashboard needs concurrently. Expenses are limited to the
// calendar month containing day.
func (s *DashboardService) loadSnapshot(workspaceID int32, day time.Time) (*domain.Snapshot, error) {
	var snapshot domain.Snapshot
	var g errgroup.Group

	g.Go(func() error {
		incomes, err := s.incomeRepo.ListByWorkspace(workspaceID)
		snapshot.Incomes = incomes
		return err
	})
	g.Go(func() error {
		start, end := util.MonthBounds(day.Year(), day.Month())
		expenses, err := s.expenseRepo.List(workspaceID, &domain.ExpenseFilters{StartDate: &start, EndDate: &end})
		snapshot.Expenses = expenses
		return err
	})
	g.Go(func() error {
		active := true
		payments, err := s.recurringRepo.ListByWorkspace(workspaceID, &active)
		snapshot.Recurring = payments
		return err
	})
	g.Go(func() error {
		investments, err := s.investmentRepo.ListByWorkspace(workspaceID)
		snapshot.Investments = investments
		return err
	})
	g.Go(func() error {
		goals, err := s.goalRepo.ListByWorkspace(workspaceID)
		snapshot.Goals = goals
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
