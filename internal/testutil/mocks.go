package testutil

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MockStore links the map-backed repositories so that cascades, category
// display fields and analytics behave like the database does.
type MockStore struct {
	Users        *MockUserRepository
	Categories   *MockCategoryRepository
	Transactions *MockTransactionRepository
	Budgets      *MockBudgetRepository
	Analytics    *MockAnalyticsRepository
}

// NewMockStore creates a set of linked mock repositories
func NewMockStore() *MockStore {
	s := &MockStore{
		Users:        NewMockUserRepository(),
		Categories:   NewMockCategoryRepository(),
		Transactions: NewMockTransactionRepository(),
		Budgets:      NewMockBudgetRepository(),
	}
	s.Users.store = s
	s.Categories.store = s
	s.Transactions.store = s
	s.Budgets.store = s
	s.Analytics = NewMockAnalyticsRepository(s)
	return s
}

// MockUserRepository is a mock implementation of domain.UserRepository
type MockUserRepository struct {
	ByID     map[uuid.UUID]*domain.User
	CreateFn func(ctx context.Context, user *domain.User) (*domain.User, error)
	GetFn    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	store    *MockStore
}

// NewMockUserRepository creates a new MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		ByID: make(map[uuid.UUID]*domain.User),
	}
}

// Create creates a new user, rejecting duplicate email or username
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	for _, existing := range m.ByID {
		if existing.Email == user.Email {
			return nil, domain.ErrEmailAlreadyExists
		}
		if existing.Username == user.Username {
			return nil, domain.ErrUsernameAlreadyExists
		}
	}

	u := *user
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	m.ByID[u.ID] = &u

	out := u
	return &out, nil
}

// GetByID retrieves a user by ID
func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	if user, ok := m.ByID[id]; ok {
		u := *user
		return &u, nil
	}
	return nil, domain.ErrUserNotFound
}

// GetByEmail retrieves a user by email
func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, user := range m.ByID {
		if user.Email == email {
			u := *user
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// UpdateProfile updates the stored profile fields
func (m *MockUserRepository) UpdateProfile(ctx context.Context, user *domain.User) (*domain.User, error) {
	existing, ok := m.ByID[user.ID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	for id, other := range m.ByID {
		if id != user.ID && other.Username == user.Username {
			return nil, domain.ErrUsernameAlreadyExists
		}
	}
	existing.Username = user.Username
	existing.FirstName = user.FirstName
	existing.LastName = user.LastName
	existing.ProfilePicture = user.ProfilePicture
	existing.Currency = user.Currency
	existing.UpdatedAt = time.Now()
	u := *existing
	return &u, nil
}

// UpdatePassword stores a new password hash
func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	existing, ok := m.ByID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	existing.PasswordHash = passwordHash
	return nil
}

// Delete removes a user and, when linked to a store, everything the user owns
func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.ByID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(m.ByID, id)
	if m.store != nil {
		m.store.Categories.deleteOwnedBy(id)
		m.store.Transactions.deleteOwnedBy(id)
		m.store.Budgets.deleteOwnedBy(id)
	}
	return nil
}

// AddUser adds a user directly to the mock repository
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.ByID[user.ID] = user
}

// MockCategoryRepository is a mock implementation of domain.CategoryRepository
type MockCategoryRepository struct {
	Categories map[int32]*domain.Category
	NextID     int32
	CreateFn   func(ctx context.Context, category *domain.Category) (*domain.Category, error)
	ListFn     func(ctx context.Context, userID uuid.UUID, filters *domain.CategoryFilters) ([]*domain.Category, error)
	store      *MockStore
}

// NewMockCategoryRepository creates a new MockCategoryRepository
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		Categories: make(map[int32]*domain.Category),
		NextID:     1,
	}
}

func (m *MockCategoryRepository) isDuplicate(c *domain.Category) bool {
	for id, existing := range m.Categories {
		if id != c.ID && existing.UserID == c.UserID && existing.Name == c.Name && existing.Type == c.Type {
			return true
		}
	}
	return false
}

// Create creates a new category
func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, category)
	}
	c := *category
	c.ID = 0
	if m.isDuplicate(&c) {
		return nil, domain.ErrCategoryAlreadyExists
	}
	c.ID = m.NextID
	m.NextID++
	c.CreatedAt = time.Now()
	m.Categories[c.ID] = &c
	out := c
	return &out, nil
}

// GetByID retrieves a category by its ID for a user
func (m *MockCategoryRepository) GetByID(ctx context.Context, userID uuid.UUID, id int32) (*domain.Category, error) {
	category, ok := m.Categories[id]
	if !ok || category.UserID != userID {
		return nil, domain.ErrCategoryNotFound
	}
	c := *category
	return &c, nil
}

// List retrieves a user's categories filtered by name substring and ordered like the database query
func (m *MockCategoryRepository) List(ctx context.Context, userID uuid.UUID, filters *domain.CategoryFilters) ([]*domain.Category, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, userID, filters)
	}
	search := ""
	ordering := domain.CategoryOrderName
	if filters != nil {
		search = strings.ToLower(filters.Search)
		if filters.Ordering != "" {
			ordering = filters.Ordering
		}
	}

	result := []*domain.Category{}
	for _, category := range m.Categories {
		if category.UserID != userID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(category.Name), search) {
			continue
		}
		c := *category
		result = append(result, &c)
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		switch ordering {
		case domain.CategoryOrderNameDesc:
			if a.Name != b.Name {
				return a.Name > b.Name
			}
		case domain.CategoryOrderCreatedAt:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
		case domain.CategoryOrderCreatedAtDesc:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
		default:
			if a.Name != b.Name {
				return a.Name < b.Name
			}
		}
		return a.ID < b.ID
	})
	return result, nil
}

// Update replaces a category's mutable fields
func (m *MockCategoryRepository) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	existing, ok := m.Categories[category.ID]
	if !ok || existing.UserID != category.UserID {
		return nil, domain.ErrCategoryNotFound
	}
	if m.isDuplicate(category) {
		return nil, domain.ErrCategoryAlreadyExists
	}
	existing.Name = category.Name
	existing.Type = category.Type
	existing.Icon = category.Icon
	existing.Color = category.Color
	existing.IsDefault = category.IsDefault
	c := *existing
	return &c, nil
}

// Delete removes a category, detaching its transactions and removing its budgets when linked to a store
func (m *MockCategoryRepository) Delete(ctx context.Context, userID uuid.UUID, id int32) error {
	existing, ok := m.Categories[id]
	if !ok || existing.UserID != userID {
		return domain.ErrCategoryNotFound
	}
	delete(m.Categories, id)
	if m.store != nil {
		m.store.Transactions.detachCategory(id)
		m.store.Budgets.deleteByCategory(id)
	}
	return nil
}

// AddCategory adds a category directly to the mock repository
func (m *MockCategoryRepository) AddCategory(category *domain.Category) {
	if category.ID == 0 {
		category.ID = m.NextID
	}
	if category.ID >= m.NextID {
		m.NextID = category.ID + 1
	}
	m.Categories[category.ID] = category
}

func (m *MockCategoryRepository) deleteOwnedBy(userID uuid.UUID) {
	for id, c := range m.Categories {
		if c.UserID == userID {
			delete(m.Categories, id)
		}
	}
}

// MockTransactionRepository is a mock implementation of domain.TransactionRepository
type MockTransactionRepository struct {
	Transactions map[int32]*domain.Transaction
	NextID       int32
	CreateFn     func(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
	ListFn       func(ctx context.Context, userID uuid.UUID, filters *domain.TransactionFilters) (*domain.PaginatedTransactions, error)
	store        *MockStore
}

// NewMockTransactionRepository creates a new MockTransactionRepository
func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		Transactions: make(map[int32]*domain.Transaction),
		NextID:       1,
	}
}

// withCategory returns a copy of t carrying the current display fields of its category
func (m *MockTransactionRepository) withCategory(t *domain.Transaction) *domain.Transaction {
	out := *t
	out.CategoryName, out.CategoryIcon, out.CategoryColor = nil, nil, nil
	if m.store != nil && t.CategoryID != nil {
		if c, ok := m.store.Categories.Categories[*t.CategoryID]; ok {
			name, icon, color := c.Name, c.Icon, c.Color
			out.CategoryName, out.CategoryIcon, out.CategoryColor = &name, &icon, &color
		}
	}
	return &out
}

// Create creates a new transaction
func (m *MockTransactionRepository) Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, transaction)
	}
	t := *transaction
	t.ID = m.NextID
	m.NextID++
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	m.Transactions[t.ID] = &t
	return m.withCategory(&t), nil
}

// GetByID retrieves a transaction by its ID for a user
func (m *MockTransactionRepository) GetByID(ctx context.Context, userID uuid.UUID, id int32) (*domain.Transaction, error) {
	transaction, ok := m.Transactions[id]
	if !ok || transaction.UserID != userID {
		return nil, domain.ErrTransactionNotFound
	}
	return m.withCategory(transaction), nil
}

// List retrieves a user's transactions with filters, ordering and pagination
func (m *MockTransactionRepository) List(ctx context.Context, userID uuid.UUID, filters *domain.TransactionFilters) (*domain.PaginatedTransactions, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, userID, filters)
	}
	if filters == nil {
		filters = &domain.TransactionFilters{}
	}

	filtered := []*domain.Transaction{}
	for _, t := range m.Transactions {
		if t.UserID != userID || !matchesTransactionFilters(t, filters) {
			continue
		}
		filtered = append(filtered, m.withCategory(t))
	}

	ordering := filters.Ordering
	if len(ordering) == 0 {
		ordering = domain.DefaultTransactionOrdering
	}
	sort.Slice(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		for _, o := range ordering {
			cmp := compareTransactions(a, b, o.Field)
			if cmp == 0 {
				continue
			}
			if o.Desc {
				return cmp > 0
			}
			return cmp < 0
		}
		return a.ID > b.ID
	})

	// Apply pagination
	page := int32(1)
	pageSize := int32(domain.DefaultPageSize)
	if filters.Page > 0 {
		page = filters.Page
	}
	if filters.PageSize > 0 {
		pageSize = filters.PageSize
		if pageSize > domain.MaxPageSize {
			pageSize = domain.MaxPageSize
		}
	}

	totalItems := int64(len(filtered))
	totalPages := int32(totalItems / int64(pageSize))
	if totalItems%int64(pageSize) > 0 {
		totalPages++
	}

	// Apply offset and limit
	start := (page - 1) * pageSize
	end := start + pageSize
	if start >= int32(len(filtered)) {
		filtered = []*domain.Transaction{}
	} else {
		if end > int32(len(filtered)) {
			end = int32(len(filtered))
		}
		filtered = filtered[start:end]
	}

	return &domain.PaginatedTransactions{
		Data:       filtered,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}, nil
}

// Update replaces a transaction's mutable fields
func (m *MockTransactionRepository) Update(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	existing, ok := m.Transactions[transaction.ID]
	if !ok || existing.UserID != transaction.UserID {
		return nil, domain.ErrTransactionNotFound
	}
	existing.CategoryID = transaction.CategoryID
	existing.Amount = transaction.Amount
	existing.Type = transaction.Type
	existing.Description = transaction.Description
	existing.Date = transaction.Date
	existing.UpdatedAt = time.Now()
	return m.withCategory(existing), nil
}

// Delete removes a transaction
func (m *MockTransactionRepository) Delete(ctx context.Context, userID uuid.UUID, id int32) error {
	existing, ok := m.Transactions[id]
	if !ok || existing.UserID != userID {
		return domain.ErrTransactionNotFound
	}
	delete(m.Transactions, id)
	return nil
}

// AddTransaction adds a transaction directly to the mock repository
func (m *MockTransactionRepository) AddTransaction(transaction *domain.Transaction) {
	if transaction.ID == 0 {
		transaction.ID = m.NextID
	}
	if transaction.ID >= m.NextID {
		m.NextID = transaction.ID + 1
	}
	if transaction.CreatedAt.IsZero() {
		transaction.CreatedAt = time.Now()
	}
	m.Transactions[transaction.ID] = transaction
}

func (m *MockTransactionRepository) detachCategory(categoryID int32) {
	for _, t := range m.Transactions {
		if t.CategoryID != nil && *t.CategoryID == categoryID {
			t.CategoryID = nil
		}
	}
}

func (m *MockTransactionRepository) deleteOwnedBy(userID uuid.UUID) {
	for id, t := range m.Transactions {
		if t.UserID == userID {
			delete(m.Transactions, id)
		}
	}
}

func matchesTransactionFilters(t *domain.Transaction, f *domain.TransactionFilters) bool {
	if f.Type != nil && t.Type != *f.Type {
		return false
	}
	if f.CategoryID != nil && (t.CategoryID == nil || *t.CategoryID != *f.CategoryID) {
		return false
	}
	if f.Date != nil && !t.Date.Equal(*f.Date) {
		return false
	}
	if f.DateFrom != nil && t.Date.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && t.Date.After(*f.DateTo) {
		return false
	}
	if f.AmountMin != nil && t.Amount.LessThan(*f.AmountMin) {
		return false
	}
	if f.AmountMax != nil && t.Amount.GreaterThan(*f.AmountMax) {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(t.Description), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

func compareTransactions(a, b *domain.Transaction, field string) int {
	switch field {
	case domain.TransactionOrderDate:
		return a.Date.Compare(b.Date)
	case domain.TransactionOrderAmount:
		return a.Amount.Cmp(b.Amount)
	case domain.TransactionOrderCreatedAt:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
	return 0
}

// MockBudgetRepository is a mock implementation of domain.BudgetRepository
type MockBudgetRepository struct {
	Budgets  map[int32]*domain.Budget
	NextID   int32
	CreateFn func(ctx context.Context, budget *domain.Budget) (*domain.Budget, error)
	store    *MockStore
}

// NewMockBudgetRepository creates a new MockBudgetRepository
func NewMockBudgetRepository() *MockBudgetRepository {
	return &MockBudgetRepository{
		Budgets: make(map[int32]*domain.Budget),
		NextID:  1,
	}
}

func (m *MockBudgetRepository) isDuplicate(b *domain.Budget) bool {
	for id, existing := range m.Budgets {
		if id != b.ID && existing.UserID == b.UserID && existing.CategoryID == b.CategoryID && existing.Month.Equal(b.Month) {
			return true
		}
	}
	return false
}

// withCategory returns a copy of b carrying the current display fields of its category
func (m *MockBudgetRepository) withCategory(b *domain.Budget) *domain.Budget {
	out := *b
	if m.store != nil {
		if c, ok := m.store.Categories.Categories[b.CategoryID]; ok {
			out.CategoryName, out.CategoryIcon, out.CategoryColor = c.Name, c.Icon, c.Color
		}
	}
	return &out
}

// Create creates a new budget
func (m *MockBudgetRepository) Create(ctx context.Context, budget *domain.Budget) (*domain.Budget, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, budget)
	}
	b := *budget
	b.ID = 0
	if m.isDuplicate(&b) {
		return nil, domain.ErrBudgetAlreadyExists
	}
	b.ID = m.NextID
	m.NextID++
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	m.Budgets[b.ID] = &b
	return m.withCategory(&b), nil
}

// GetByID retrieves a budget by its ID for a user
func (m *MockBudgetRepository) GetByID(ctx context.Context, userID uuid.UUID, id int32) (*domain.Budget, error) {
	budget, ok := m.Budgets[id]
	if !ok || budget.UserID != userID {
		return nil, domain.ErrBudgetNotFound
	}
	return m.withCategory(budget), nil
}

// List retrieves a user's budgets, most recent month first
func (m *MockBudgetRepository) List(ctx context.Context, userID uuid.UUID, filters *domain.BudgetFilters) ([]*domain.Budget, error) {
	result := []*domain.Budget{}
	for _, b := range m.Budgets {
		if b.UserID != userID {
			continue
		}
		if filters != nil {
			if filters.CategoryID != nil && b.CategoryID != *filters.CategoryID {
				continue
			}
			if filters.Month != nil && !b.Month.Equal(*filters.Month) {
				continue
			}
		}
		result = append(result, m.withCategory(b))
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Month.Equal(result[j].Month) {
			return result[i].Month.After(result[j].Month)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// Update replaces a budget's category, amount and month
func (m *MockBudgetRepository) Update(ctx context.Context, budget *domain.Budget) (*domain.Budget, error) {
	existing, ok := m.Budgets[budget.ID]
	if !ok || existing.UserID != budget.UserID {
		return nil, domain.ErrBudgetNotFound
	}
	if m.isDuplicate(budget) {
		return nil, domain.ErrBudgetAlreadyExists
	}
	existing.CategoryID = budget.CategoryID
	existing.Amount = budget.Amount
	existing.Month = budget.Month
	existing.UpdatedAt = time.Now()
	return m.withCategory(existing), nil
}

// Delete removes a budget
func (m *MockBudgetRepository) Delete(ctx context.Context, userID uuid.UUID, id int32) error {
	existing, ok := m.Budgets[id]
	if !ok || existing.UserID != userID {
		return domain.ErrBudgetNotFound
	}
	delete(m.Budgets, id)
	return nil
}

// AddBudget adds a budget directly to the mock repository
func (m *MockBudgetRepository) AddBudget(budget *domain.Budget) {
	if budget.ID == 0 {
		budget.ID = m.NextID
	}
	if budget.ID >= m.NextID {
		m.NextID = budget.ID + 1
	}
	m.Budgets[budget.ID] = budget
}

func (m *MockBudgetRepository) deleteByCategory(categoryID int32) {
	for id, b := range m.Budgets {
		if b.CategoryID == categoryID {
			delete(m.Budgets, id)
		}
	}
}

func (m *MockBudgetRepository) deleteOwnedBy(userID uuid.UUID) {
	for id, b := range m.Budgets {
		if b.UserID == userID {
			delete(m.Budgets, id)
		}
	}
}

// MockAnalyticsRepository computes the analytics aggregates in memory over a MockStore
type MockAnalyticsRepository struct {
	store *MockStore
	Err   error
}

// NewMockAnalyticsRepository creates a new MockAnalyticsRepository reading from store
func NewMockAnalyticsRepository(store *MockStore) *MockAnalyticsRepository {
	return &MockAnalyticsRepository{store: store}
}

func (m *MockAnalyticsRepository) inRange(userID uuid.UUID, start, end time.Time, fn func(t *domain.Transaction)) {
	for _, t := range m.store.Transactions.Transactions {
		if t.UserID != userID || t.Date.Before(start) || t.Date.After(end) {
			continue
		}
		fn(t)
	}
}

// SumByTypeAndDateRange sums amounts of one type for dates in [start, end]
func (m *MockAnalyticsRepository) SumByTypeAndDateRange(ctx context.Context, userID uuid.UUID, txType domain.TransactionType, start, end time.Time) (decimal.Decimal, error) {
	if m.Err != nil {
		return decimal.Zero, m.Err
	}
	total := decimal.Zero
	m.inRange(userID, start, end, func(t *domain.Transaction) {
		if t.Type == txType {
			total = total.Add(t.Amount)
		}
	})
	return total, nil
}

// CountByDateRange counts transactions for dates in [start, end]
func (m *MockAnalyticsRepository) CountByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	var count int64
	m.inRange(userID, start, end, func(t *domain.Transaction) { count++ })
	return count, nil
}

// ExpensesByCategory groups expenses by category display fields, largest total first
func (m *MockAnalyticsRepository) ExpensesByCategory(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*domain.CategoryExpense, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	type groupKey struct {
		name, color, icon string
		categorized       bool
	}
	groups := map[groupKey]*domain.CategoryExpense{}
	var order []groupKey

	m.inRange(userID, start, end, func(t *domain.Transaction) {
		if t.Type != domain.TransactionTypeExpense {
			return
		}
		var key groupKey
		if t.CategoryID != nil {
			if c, ok := m.store.Categories.Categories[*t.CategoryID]; ok {
				key = groupKey{name: c.Name, color: c.Color, icon: c.Icon, categorized: true}
			}
		}
		g, ok := groups[key]
		if !ok {
			g = &domain.CategoryExpense{Total: decimal.Zero}
			if key.categorized {
				name, color, icon := key.name, key.color, key.icon
				g.CategoryName, g.CategoryColor, g.CategoryIcon = &name, &color, &icon
			}
			groups[key] = g
			order = append(order, key)
		}
		g.Total = g.Total.Add(t.Amount)
		g.Count++
	})

	result := make([]*domain.CategoryExpense, 0, len(order))
	for _, key := range order {
		result = append(result, groups[key])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Total.GreaterThan(result[j].Total)
	})
	return result, nil
}

// DailyExpenses returns per-day expense totals, ascending by date
func (m *MockAnalyticsRepository) DailyExpenses(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*domain.DailyExpense, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	byDate := map[time.Time]*domain.DailyExpense{}
	m.inRange(userID, start, end, func(t *domain.Transaction) {
		if t.Type != domain.TransactionTypeExpense {
			return
		}
		d, ok := byDate[t.Date]
		if !ok {
			d = &domain.DailyExpense{Date: t.Date, Total: decimal.Zero}
			byDate[t.Date] = d
		}
		d.Total = d.Total.Add(t.Amount)
	})

	result := make([]*domain.DailyExpense, 0, len(byDate))
	for _, d := range byDate {
		result = append(result, d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

// BudgetsWithSpending returns the budgets of month with their category's expenses in [start, end]
func (m *MockAnalyticsRepository) BudgetsWithSpending(ctx context.Context, userID uuid.UUID, month, start, end time.Time) ([]*domain.BudgetSpending, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	result := []*domain.BudgetSpending{}
	for _, b := range m.store.Budgets.Budgets {
		if b.UserID != userID || !b.Month.Equal(month) {
			continue
		}
		row := &domain.BudgetSpending{
			BudgetID:   b.ID,
			CategoryID: b.CategoryID,
			Amount:     b.Amount,
			Spent:      decimal.Zero,
		}
		if c, ok := m.store.Categories.Categories[b.CategoryID]; ok {
			row.CategoryName, row.CategoryIcon, row.CategoryColor = c.Name, c.Icon, c.Color
		}
		m.inRange(userID, start, end, func(t *domain.Transaction) {
			if t.Type == domain.TransactionTypeExpense && t.CategoryID != nil && *t.CategoryID == b.CategoryID {
				row.Spent = row.Spent.Add(t.Amount)
			}
		})
		result = append(result, row)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CategoryName != result[j].CategoryName {
			return result[i].CategoryName < result[j].CategoryName
		}
		return result[i].BudgetID < result[j].BudgetID
	})
	return result, nil
}
