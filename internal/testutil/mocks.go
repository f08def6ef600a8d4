package testutil

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/websocket"
	"github.com/shopspring/decimal"
)

// MockWorkspaceRepository is a mock implementation of domain.WorkspaceRepository
type MockWorkspaceRepository struct {
	Workspaces map[int32]*domain.Workspace
	ByAuth0ID  map[string]*domain.Workspace
	NextID     int32
	CreateFn   func(workspace *domain.Workspace) (*domain.Workspace, error)
	ListIDsErr error
}

// NewMockWorkspaceRepository creates a new MockWorkspaceRepository
func NewMockWorkspaceRepository() *MockWorkspaceRepository {
	return &MockWorkspaceRepository{
		Workspaces: make(map[int32]*domain.Workspace),
		ByAuth0ID:  make(map[string]*domain.Workspace),
		NextID:     1,
	}
}

// GetByAuth0ID retrieves a workspace by its owner's Auth0 ID
func (m *MockWorkspaceRepository) GetByAuth0ID(auth0ID string) (*domain.Workspace, error) {
	if ws, ok := m.ByAuth0ID[auth0ID]; ok {
		return ws, nil
	}
	return nil, domain.ErrWorkspaceNotFound
}

// Create creates a new workspace
func (m *MockWorkspaceRepository) Create(workspace *domain.Workspace) (*domain.Workspace, error) {
	if m.CreateFn != nil {
		return m.CreateFn(workspace)
	}
	if existing, ok := m.ByAuth0ID[workspace.Auth0ID]; ok {
		return existing, nil
	}
	workspace.ID = m.NextID
	m.NextID++
	workspace.CreatedAt = time.Now()
	workspace.UpdatedAt = workspace.CreatedAt
	m.AddWorkspace(workspace)
	return workspace, nil
}

// ListIDs returns every workspace ID in ascending order
func (m *MockWorkspaceRepository) ListIDs() ([]int32, error) {
	if m.ListIDsErr != nil {
		return nil, m.ListIDsErr
	}
	ids := make([]int32, 0, len(m.Workspaces))
	for id := range m.Workspaces {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// AddWorkspace adds a workspace to the mock repository (helper for tests)
func (m *MockWorkspaceRepository) AddWorkspace(workspace *domain.Workspace) {
	m.Workspaces[workspace.ID] = workspace
	m.ByAuth0ID[workspace.Auth0ID] = workspace
	if workspace.ID >= m.NextID {
		m.NextID = workspace.ID + 1
	}
}

// MockIncomeRepository is a mock implementation of domain.IncomeRepository
type MockIncomeRepository struct {
	Incomes map[int32]*domain.IncomeSource
	NextID  int32
	ListErr error
}

// NewMockIncomeRepository creates a new MockIncomeRepository
func NewMockIncomeRepository() *MockIncomeRepository {
	return &MockIncomeRepository{
		Incomes: make(map[int32]*domain.IncomeSource),
		NextID:  1,
	}
}

// Create creates a new income source
func (m *MockIncomeRepository) Create(income *domain.IncomeSource) (*domain.IncomeSource, error) {
	income.ID = m.NextID
	m.NextID++
	income.CreatedAt = time.Now()
	income.UpdatedAt = income.CreatedAt
	m.Incomes[income.ID] = income
	return income, nil
}

// GetByID retrieves an income source by ID
func (m *MockIncomeRepository) GetByID(workspaceID int32, id int32) (*domain.IncomeSource, error) {
	if income, ok := m.Incomes[id]; ok && income.WorkspaceID == workspaceID {
		return income, nil
	}
	return nil, domain.ErrIncomeNotFound
}

// ListByWorkspace retrieves all income sources for a workspace
func (m *MockIncomeRepository) ListByWorkspace(workspaceID int32) ([]*domain.IncomeSource, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	result := make([]*domain.IncomeSource, 0)
	for _, income := range m.Incomes {
		if income.WorkspaceID == workspaceID {
			result = append(result, income)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// SetActive toggles an income source
func (m *MockIncomeRepository) SetActive(workspaceID int32, id int32, active bool) (*domain.IncomeSource, error) {
	income, err := m.GetByID(workspaceID, id)
	if err != nil {
		return nil, err
	}
	income.IsActive = active
	income.UpdatedAt = time.Now()
	return income, nil
}

// Delete removes an income source
func (m *MockIncomeRepository) Delete(workspaceID int32, id int32) error {
	if _, err := m.GetByID(workspaceID, id); err != nil {
		return err
	}
	delete(m.Incomes, id)
	return nil
}

// AddIncome adds an income source to the mock repository (helper for tests)
func (m *MockIncomeRepository) AddIncome(income *domain.IncomeSource) {
	m.Incomes[income.ID] = income
	if income.ID >= m.NextID {
		m.NextID = income.ID + 1
	}
}

// MockExpenseRepository is a mock implementation of domain.ExpenseRepository
type MockExpenseRepository struct {
	Expenses    map[int32]*domain.Expense
	NextID      int32
	ListErr     error
	LastFilters *domain.ExpenseFilters
	mu          sync.Mutex
}

// NewMockExpenseRepository creates a new MockExpenseRepository
func NewMockExpenseRepository() *MockExpenseRepository {
	return &MockExpenseRepository{
		Expenses: make(map[int32]*domain.Expense),
		NextID:   1,
	}
}

// Create records a new expense
func (m *MockExpenseRepository) Create(expense *domain.Expense) (*domain.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.insert(expense), nil
}

func (m *MockExpenseRepository) insert(expense *domain.Expense) *domain.Expense {
	stored := *expense
	stored.ID = m.NextID
	m.NextID++
	stored.CreatedAt = time.Now()
	m.Expenses[stored.ID] = &stored
	return &stored
}

// GetByID retrieves an expense by ID
func (m *MockExpenseRepository) GetByID(workspaceID int32, id int32) (*domain.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if expense, ok := m.Expenses[id]; ok && expense.WorkspaceID == workspaceID {
		return expense, nil
	}
	return nil, domain.ErrExpenseNotFound
}

// List retrieves expenses matching the filters, newest first
func (m *MockExpenseRepository) List(workspaceID int32, filters *domain.ExpenseFilters) ([]*domain.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastFilters = filters
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	result := make([]*domain.Expense, 0)
	for _, expense := range m.Expenses {
		if expense.WorkspaceID != workspaceID {
			continue
		}
		if filters != nil {
			if filters.StartDate != nil && expense.Date.Before(*filters.StartDate) {
				continue
			}
			if filters.EndDate != nil && expense.Date.After(*filters.EndDate) {
				continue
			}
			if filters.Category != nil && expense.Category != *filters.Category {
				continue
			}
		}
		result = append(result, expense)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.After(result[j].Date)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

// Delete removes an expense
func (m *MockExpenseRepository) Delete(workspaceID int32, id int32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if expense, ok := m.Expenses[id]; !ok || expense.WorkspaceID != workspaceID {
		return domain.ErrExpenseNotFound
	}
	delete(m.Expenses, id)
	return nil
}

// AddExpense adds an expense to the mock repository (helper for tests)
func (m *MockExpenseRepository) AddExpense(expense *domain.Expense) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Expenses[expense.ID] = expense
	if expense.ID >= m.NextID {
		m.NextID = expense.ID + 1
	}
}

// MockBudgetRepository is a mock implementation of domain.BudgetRepository
type MockBudgetRepository struct {
	Budgets map[int32]*domain.Budget
	NextID  int32
	ListErr error
}

// NewMockBudgetRepository creates a new MockBudgetRepository
func NewMockBudgetRepository() *MockBudgetRepository {
	return &MockBudgetRepository{
		Budgets: make(map[int32]*domain.Budget),
		NextID:  1,
	}
}

// Create creates a new budget
func (m *MockBudgetRepository) Create(budget *domain.Budget) (*domain.Budget, error) {
	budget.ID = m.NextID
	m.NextID++
	budget.CreatedAt = time.Now()
	budget.UpdatedAt = budget.CreatedAt
	m.Budgets[budget.ID] = budget
	return budget, nil
}

// GetByID retrieves a budget by ID
func (m *MockBudgetRepository) GetByID(workspaceID int32, id int32) (*domain.Budget, error) {
	if budget, ok := m.Budgets[id]; ok && budget.WorkspaceID == workspaceID {
		return budget, nil
	}
	return nil, domain.ErrBudgetNotFound
}

// ListByWorkspace retrieves all budgets for a workspace
func (m *MockBudgetRepository) ListByWorkspace(workspaceID int32) ([]*domain.Budget, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	result := make([]*domain.Budget, 0)
	for _, budget := range m.Budgets {
		if budget.WorkspaceID == workspaceID {
			result = append(result, budget)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Delete removes a budget
func (m *MockBudgetRepository) Delete(workspaceID int32, id int32) error {
	if _, err := m.GetByID(workspaceID, id); err != nil {
		return err
	}
	delete(m.Budgets, id)
	return nil
}

// AddBudget adds a budget to the mock repository (helper for tests)
func (m *MockBudgetRepository) AddBudget(budget *domain.Budget) {
	m.Budgets[budget.ID] = budget
	if budget.ID >= m.NextID {
		m.NextID = budget.ID + 1
	}
}

// MockRecurringRepository is a mock implementation of domain.RecurringRepository.
// ApplyTransition enforces the same previous-due-date guard as the database and records
// expenses into Expenses when it is set.
type MockRecurringRepository struct {
	Payments          map[int32]*domain.RecurringPayment
	NextID            int32
	Expenses          *MockExpenseRepository
	ListErr           error
	ApplyTransitionFn func(transition *domain.PaymentTransition) (*domain.PaymentTransition, error)
	mu                sync.Mutex
}

// NewMockRecurringRepository creates a new MockRecurringRepository
func NewMockRecurringRepository() *MockRecurringRepository {
	return &MockRecurringRepository{
		Payments: make(map[int32]*domain.RecurringPayment),
		NextID:   1,
	}
}

// Create creates a new recurring payment
func (m *MockRecurringRepository) Create(payment *domain.RecurringPayment) (*domain.RecurringPayment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	payment.ID = m.NextID
	m.NextID++
	payment.CreatedAt = time.Now()
	payment.UpdatedAt = payment.CreatedAt
	m.Payments[payment.ID] = payment
	return payment, nil
}

// GetByID returns a copy of the stored payment
func (m *MockRecurringRepository) GetByID(workspaceID int32, id int32) (*domain.RecurringPayment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	payment, ok := m.Payments[id]
	if !ok || payment.WorkspaceID != workspaceID {
		return nil, domain.ErrRecurringNotFound
	}
	copied := *payment
	return &copied, nil
}

// ListByWorkspace retrieves recurring payments ordered by due date
func (m *MockRecurringRepository) ListByWorkspace(workspaceID int32, activeOnly *bool) ([]*domain.RecurringPayment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	result := make([]*domain.RecurringPayment, 0)
	for _, payment := range m.Payments {
		if payment.WorkspaceID != workspaceID {
			continue
		}
		if activeOnly != nil && payment.IsActive != *activeOnly {
			continue
		}
		copied := *payment
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].NextDueDate.Equal(result[j].NextDueDate) {
			return result[i].NextDueDate.Before(result[j].NextDueDate)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// SetActive pauses or resumes a recurring payment
func (m *MockRecurringRepository) SetActive(workspaceID int32, id int32, active bool) (*domain.RecurringPayment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	payment, ok := m.Payments[id]
	if !ok || payment.WorkspaceID != workspaceID {
		return nil, domain.ErrRecurringNotFound
	}
	payment.IsActive = active
	payment.UpdatedAt = time.Now()
	copied := *payment
	return &copied, nil
}

// Delete removes a recurring payment
func (m *MockRecurringRepository) Delete(workspaceID int32, id int32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	payment, ok := m.Payments[id]
	if !ok || payment.WorkspaceID != workspaceID {
		return domain.ErrRecurringNotFound
	}
	delete(m.Payments, id)
	return nil
}

// ApplyTransition persists a transition if the stored due date still matches
func (m *MockRecurringRepository) ApplyTransition(transition *domain.PaymentTransition) (*domain.PaymentTransition, error) {
	if m.ApplyTransitionFn != nil {
		return m.ApplyTransitionFn(transition)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	updated := transition.Payment
	stored, ok := m.Payments[updated.ID]
	if !ok || stored.WorkspaceID != updated.WorkspaceID {
		return nil, domain.ErrRecurringNotFound
	}
	if !stored.IsActive || !stored.NextDueDate.Equal(transition.PreviousDueDate) {
		return nil, fmt.Errorf("%w: payment %d", domain.ErrPaymentConflict, updated.ID)
	}

	stored.NextDueDate = updated.NextDueDate
	stored.UpdatedAt = time.Now()
	copied := *stored

	result := &domain.PaymentTransition{
		Action:          transition.Action,
		PreviousDueDate: transition.PreviousDueDate,
		Payment:         &copied,
	}
	if transition.Expense != nil {
		if m.Expenses != nil {
			result.Expense, _ = m.Expenses.Create(transition.Expense)
		} else {
			result.Expense = transition.Expense
		}
	}
	return result, nil
}

// AddPayment adds a recurring payment to the mock repository (helper for tests)
func (m *MockRecurringRepository) AddPayment(payment *domain.RecurringPayment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Payments[payment.ID] = payment
	if payment.ID >= m.NextID {
		m.NextID = payment.ID + 1
	}
}

// MockInvestmentRepository is a mock implementation of domain.InvestmentRepository
type MockInvestmentRepository struct {
	Investments map[int32]*domain.Investment
	NextID      int32
	ListErr     error
}

// NewMockInvestmentRepository creates a new MockInvestmentRepository
func NewMockInvestmentRepository() *MockInvestmentRepository {
	return &MockInvestmentRepository{
		Investments: make(map[int32]*domain.Investment),
		NextID:      1,
	}
}

// Create creates a new investment
func (m *MockInvestmentRepository) Create(investment *domain.Investment) (*domain.Investment, error) {
	investment.ID = m.NextID
	m.NextID++
	investment.CreatedAt = time.Now()
	investment.UpdatedAt = investment.CreatedAt
	m.Investments[investment.ID] = investment
	return investment, nil
}

// GetByID retrieves an investment by ID
func (m *MockInvestmentRepository) GetByID(workspaceID int32, id int32) (*domain.Investment, error) {
	if investment, ok := m.Investments[id]; ok && investment.WorkspaceID == workspaceID {
		return investment, nil
	}
	return nil, domain.ErrInvestmentNotFound
}

// ListByWorkspace retrieves all investments for a workspace
func (m *MockInvestmentRepository) ListByWorkspace(workspaceID int32) ([]*domain.Investment, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	result := make([]*domain.Investment, 0)
	for _, investment := range m.Investments {
		if investment.WorkspaceID == workspaceID {
			result = append(result, investment)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// UpdateCurrentPrice records a new market price
func (m *MockInvestmentRepository) UpdateCurrentPrice(workspaceID int32, id int32, price decimal.Decimal) (*domain.Investment, error) {
	investment, err := m.GetByID(workspaceID, id)
	if err != nil {
		return nil, err
	}
	investment.CurrentPrice = price
	investment.UpdatedAt = time.Now()
	return investment, nil
}

// Delete removes an investment
func (m *MockInvestmentRepository) Delete(workspaceID int32, id int32) error {
	if _, err := m.GetByID(workspaceID, id); err != nil {
		return err
	}
	delete(m.Investments, id)
	return nil
}

// AddInvestment adds an investment to the mock repository (helper for tests)
func (m *MockInvestmentRepository) AddInvestment(investment *domain.Investment) {
	m.Investments[investment.ID] = investment
	if investment.ID >= m.NextID {
		m.NextID = investment.ID + 1
	}
}

// MockGoalRepository is a mock implementation of domain.GoalRepository
type MockGoalRepository struct {
	Goals   map[int32]*domain.Goal
	NextID  int32
	ListErr error
}

// NewMockGoalRepository creates a new MockGoalRepository
func NewMockGoalRepository() *MockGoalRepository {
	return &MockGoalRepository{
		Goals:  make(map[int32]*domain.Goal),
		NextID: 1,
	}
}

// Create creates a new goal
func (m *MockGoalRepository) Create(goal *domain.Goal) (*domain.Goal, error) {
	goal.ID = m.NextID
	m.NextID++
	goal.CreatedAt = time.Now()
	goal.UpdatedAt = goal.CreatedAt
	m.Goals[goal.ID] = goal
	return goal, nil
}

// GetByID retrieves a goal by ID
func (m *MockGoalRepository) GetByID(workspaceID int32, id int32) (*domain.Goal, error) {
	if goal, ok := m.Goals[id]; ok && goal.WorkspaceID == workspaceID {
		return goal, nil
	}
	return nil, domain.ErrGoalNotFound
}

// ListByWorkspace retrieves all goals for a workspace
func (m *MockGoalRepository) ListByWorkspace(workspaceID int32) ([]*domain.Goal, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	result := make([]*domain.Goal, 0)
	for _, goal := range m.Goals {
		if goal.WorkspaceID == workspaceID {
			result = append(result, goal)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// UpdateCurrentAmount records how much has been saved
func (m *MockGoalRepository) UpdateCurrentAmount(workspaceID int32, id int32, amount decimal.Decimal) (*domain.Goal, error) {
	goal, err := m.GetByID(workspaceID, id)
	if err != nil {
		return nil, err
	}
	goal.CurrentAmount = amount
	goal.UpdatedAt = time.Now()
	return goal, nil
}

// Delete removes a goal
func (m *MockGoalRepository) Delete(workspaceID int32, id int32) error {
	if _, err := m.GetByID(workspaceID, id); err != nil {
		return err
	}
	delete(m.Goals, id)
	return nil
}

// AddGoal adds a goal to the mock repository (helper for tests)
func (m *MockGoalRepository) AddGoal(goal *domain.Goal) {
	m.Goals[goal.ID] = goal
	if goal.ID >= m.NextID {
		m.NextID = goal.ID + 1
	}
}

// PublishedEvent is an event captured by MockEventPublisher
type PublishedEvent struct {
	WorkspaceID int32
	Event       websocket.Event
}

// MockEventPublisher records every published event
type MockEventPublisher struct {
	Events []PublishedEvent
	mu     sync.Mutex
}

// NewMockEventPublisher creates a new MockEventPublisher
func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{}
}

// Publish records the event
func (m *MockEventPublisher) Publish(workspaceID int32, event websocket.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, PublishedEvent{WorkspaceID: workspaceID, Event: event})
}

// Types returns the type of every recorded event in order
func (m *MockEventPublisher) Types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]string, 0, len(m.Events))
	for _, e := range m.Events {
		types = append(types, e.Event.Type)
	}
	return types
}
