package service

import (
	"fmt"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/engine"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// MaxCompareScenarios bounds how many scenarios one comparison may run
const MaxCompareScenarios = 10

// ProjectionService runs savings/investment projections against a workspace's stored figures
type ProjectionService struct {
	incomeRepo     domain.IncomeRepository
	investmentRepo domain.InvestmentRepository
}

// NewProjectionService creates a new ProjectionService
func NewProjectionService(incomeRepo domain.IncomeRepository, investmentRepo domain.InvestmentRepository) *ProjectionService {
	return &ProjectionService{
		incomeRepo:     incomeRepo,
		investmentRepo: investmentRepo,
	}
}

// ProjectionRequest is a scenario whose income and starting value may be left to the workspace.
// A nil MonthlyNetIncome uses the normalised monthly income; a nil StartingInvestmentValue uses
// the current portfolio value.
type ProjectionRequest struct {
	Name                        string
	SavingsRatePercent          decimal.Decimal
	ExpectedAnnualReturnPercent decimal.Decimal
	Months                      int
	ExtraMonthlySavings         decimal.Decimal
	MonthlyNetIncome            *decimal.Decimal
	StartingInvestmentValue     *decimal.Decimal
}

// Project runs a single scenario
func (s *ProjectionService) Project(workspaceID int32, request ProjectionRequest) (*domain.ProjectionResult, error) {
	if err := validateHorizon(request.Months); err != nil {
		return nil, err
	}
	defaults, err := s.loadDefaults(workspaceID, []ProjectionRequest{request})
	if err != nil {
		return nil, err
	}
	return runProjection(request.scenario(defaults))
}

// Compare runs several scenarios concurrently and returns results in request order
func (s *ProjectionService) Compare(workspaceID int32, requests []ProjectionRequest) ([]domain.ProjectionResult, error) {
	if len(requests) == 0 {
		return nil, fmt.Errorf("%w: at least one scenario is required", domain.ErrInvalidInput)
	}
	if len(requests) > MaxCompareScenarios {
		return nil, fmt.Errorf("%w: at most %d scenarios can be compared", domain.ErrInvalidInput, MaxCompareScenarios)
	}
	for _, request := range requests {
		if err := validateHorizon(request.Months); err != nil {
			return nil, err
		}
	}

	defaults, err := s.loadDefaults(workspaceID, requests)
	if err != nil {
		return nil, err
	}

	results := make([]domain.ProjectionResult, len(requests))
	var g errgroup.Group
	for i, request := range requests {
		g.Go(func() error {
			result, err := runProjection(request.scenario(defaults))
			if err != nil {
				return err
			}
			results[i] = *result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

type projectionDefaults struct {
	monthlyIncome  decimal.Decimal
	portfolioValue decimal.Decimal
}

// loadDefaults reads only the figures some request leaves unset
func (s *ProjectionService) loadDefaults(workspaceID int32, requests []ProjectionRequest) (projectionDefaults, error) {
	defaults := projectionDefaults{monthlyIncome: decimal.Zero, portfolioValue: decimal.Zero}

	var needIncome, needPortfolio bool
	for _, request := range requests {
		needIncome = needIncome || request.MonthlyNetIncome == nil
		needPortfolio = needPortfolio || request.StartingInvestmentValue == nil
	}

	if needIncome {
		incomes, err := s.incomeRepo.ListByWorkspace(workspaceID)
		if err != nil {
			return defaults, err
		}
		defaults.monthlyIncome, err = engine.MonthlyIncome(incomes)
		if err != nil {
			return defaults, err
		}
	}
	if needPortfolio {
		investments, err := s.investmentRepo.ListByWorkspace(workspaceID)
		if err != nil {
			return defaults, err
		}
		defaults.portfolioValue = engine.PortfolioPerformance(investments).TotalValue
	}
	return defaults, nil
}

func (r ProjectionRequest) scenario(defaults projectionDefaults) domain.ProjectionScenario {
	scenario := domain.ProjectionScenario{
		Name:                        r.Name,
		SavingsRatePercent:          r.SavingsRatePercent,
		ExpectedAnnualReturnPercent: r.ExpectedAnnualReturnPercent,
		Months:                      r.Months,
		ExtraMonthlySavings:         r.ExtraMonthlySavings,
		MonthlyNetIncome:            defaults.monthlyIncome,
		StartingInvestmentValue:     defaults.portfolioValue,
	}
	if r.MonthlyNetIncome != nil {
		scenario.MonthlyNetIncome = *r.MonthlyNetIncome
	}
	if r.StartingInvestmentValue != nil {
		scenario.StartingInvestmentValue = *r.StartingInvestmentValue
	}
	return scenario
}

func validateHorizon(months int) error {
	if months > domain.MaxProjectionMonths {
		return fmt.Errorf("%w: months must be at most %d, got %d", domain.ErrInvalidProjectionHorizon, domain.MaxProjectionMonths, months)
	}
	return nil
}

func runProjection(scenario domain.ProjectionScenario) (*domain.ProjectionResult, error) {
	points, err := engine.Project(scenario)
	if err != nil {
		return nil, err
	}
	return &domain.ProjectionResult{
		Scenario: scenario,
		Points:   points,
		Summary:  engine.SummarizeProjection(scenario, points),
	}, nil
}
