package services_test

import (
	"context"

	"github.com/kantocollect/salesops/internal/core/domain"
	portsrepo "github.com/kantocollect/salesops/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock SaleRepository ---

type MockSaleRepository struct {
	mock.Mock
}

var _ portsrepo.SaleRepositoryFacade = (*MockSaleRepository)(nil)

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListSales(ctx context.Context, filter domain.SaleFilter, limit int, after *portsrepo.SaleCursor) ([]domain.Sale, error) {
	args := m.Called(ctx, filter, limit, after)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListAllSales(ctx context.Context) ([]domain.Sale, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListSalesByShow(ctx context.Context, showID int64) ([]domain.Sale, error) {
	args := m.Called(ctx, showID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListDistinctItemNames(ctx context.Context, limit int) ([]string, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSaleRepository) RuleUsage(ctx context.Context) ([]domain.RuleUsage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RuleUsage), args.Error(1)
}

func (m *MockSaleRepository) UpdateSale(ctx context.Context, sale domain.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) SaveCOGSBatch(ctx context.Context, sales []domain.Sale) (map[int64]error, error) {
	args := m.Called(ctx, sales)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]error), args.Error(1)
}

func (m *MockSaleRepository) UpdateSaleMapping(ctx context.Context, mapping domain.SaleMapping) error {
	args := m.Called(ctx, mapping)
	return args.Error(0)
}

func (m *MockSaleRepository) SaveMappingBatch(ctx context.Context, mappings []domain.SaleMapping) (map[int64]error, error) {
	args := m.Called(ctx, mappings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]error), args.Error(1)
}

// --- Mock COGSRuleRepository ---

type MockCOGSRuleRepository struct {
	mock.Mock
}

var _ portsrepo.COGSRuleRepositoryFacade = (*MockCOGSRuleRepository)(nil)

func (m *MockCOGSRuleRepository) FindRuleByID(ctx context.Context, ruleID int64) (*domain.COGSRule, error) {
	args := m.Called(ctx, ruleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.COGSRule), args.Error(1)
}

func (m *MockCOGSRuleRepository) FindRuleByName(ctx context.Context, name string) (*domain.COGSRule, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.COGSRule), args.Error(1)
}

func (m *MockCOGSRuleRepository) ListRules(ctx context.Context, activeOnly bool) ([]domain.COGSRule, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.COGSRule), args.Error(1)
}

func (m *MockCOGSRuleRepository) SaveRule(ctx context.Context, rule domain.COGSRule) (int64, error) {
	args := m.Called(ctx, rule)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCOGSRuleRepository) UpdateRule(ctx context.Context, rule domain.COGSRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockCOGSRuleRepository) DeleteRule(ctx context.Context, ruleID int64) error {
	args := m.Called(ctx, ruleID)
	return args.Error(0)
}

// --- Mock CatalogRepository ---

type MockCatalogRepository struct {
	mock.Mock
}

var _ portsrepo.CatalogRepositoryFacade = (*MockCatalogRepository)(nil)

func (m *MockCatalogRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.CatalogEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogEntry), args.Error(1)
}

func (m *MockCatalogRepository) FindEntryByName(ctx context.Context, name string) (*domain.CatalogEntry, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogEntry), args.Error(1)
}

func (m *MockCatalogRepository) FindEntryByImageURLPrefix(ctx context.Context, prefix string) (*domain.CatalogEntry, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogEntry), args.Error(1)
}

func (m *MockCatalogRepository) ListEntries(ctx context.Context) ([]domain.CatalogEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogEntry), args.Error(1)
}

func (m *MockCatalogRepository) SaveEntry(ctx context.Context, entry domain.CatalogEntry) (int64, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogRepository) UpdateEntry(ctx context.Context, entry domain.CatalogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockCatalogRepository) DeleteEntry(ctx context.Context, entryID int64) (int64, error) {
	args := m.Called(ctx, entryID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock ShowService ---

type MockShowService struct {
	mock.Mock
}

func (m *MockShowService) GetShow(ctx context.Context, showID int64) (*domain.Show, error) {
	args := m.Called(ctx, showID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Show), args.Error(1)
}

func (m *MockShowService) RecomputeShow(ctx context.Context, showID int64) (*domain.Show, error) {
	args := m.Called(ctx, showID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Show), args.Error(1)
}

func (m *MockShowService) RecomputeShows(ctx context.Context, showIDs []int64) error {
	args := m.Called(ctx, showIDs)
	return args.Error(0)
}

// --- Mock ShowRepository ---

type MockShowRepository struct {
	mock.Mock
}

var _ portsrepo.ShowRepositoryFacade = (*MockShowRepository)(nil)

func (m *MockShowRepository) FindShowByID(ctx context.Context, showID int64) (*domain.Show, error) {
	args := m.Called(ctx, showID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Show), args.Error(1)
}

func (m *MockShowRepository) UpdateShowTotals(ctx context.Context, showID int64, totals domain.ShowTotals) error {
	args := m.Called(ctx, showID, totals)
	return args.Error(0)
}
