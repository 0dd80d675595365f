package handlers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/kantocollect/salesops/internal/core/domain"
	portssvc "github.com/kantocollect/salesops/internal/core/ports/services"
	"github.com/kantocollect/salesops/internal/dto"
	"github.com/kantocollect/salesops/internal/middleware"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock COGSRuleService ---
type MockCOGSRuleService struct {
	mock.Mock
}

func (m *MockCOGSRuleService) GetRule(ctx context.Context, ruleID int64) (*domain.COGSRule, error) {
	args := m.Called(ctx, ruleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.COGSRule), args.Error(1)
}
func (m *MockCOGSRuleService) ListRules(ctx context.Context, activeOnly bool) ([]domain.COGSRule, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.COGSRule), args.Error(1)
}
func (m *MockCOGSRuleService) CreateRule(ctx context.Context, req dto.CreateCOGSRuleRequest) (*domain.COGSRule, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.COGSRule), args.Error(1)
}
func (m *MockCOGSRuleService) UpdateRule(ctx context.Context, ruleID int64, req dto.UpdateCOGSRuleRequest) (*domain.COGSRule, error) {
	args := m.Called(ctx, ruleID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.COGSRule), args.Error(1)
}
func (m *MockCOGSRuleService) DeleteRule(ctx context.Context, ruleID int64) error {
	args := m.Called(ctx, ruleID)
	return args.Error(0)
}
func (m *MockCOGSRuleService) ToggleRule(ctx context.Context, ruleID int64) (*domain.COGSRule, error) {
	args := m.Called(ctx, ruleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.COGSRule), args.Error(1)
}
func (m *MockCOGSRuleService) TestRule(ctx context.Context, req dto.TestCOGSRuleRequest) (*domain.RuleTestResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RuleTestResult), args.Error(1)
}

var _ portssvc.COGSRuleSvcFacade = (*MockCOGSRuleService)(nil)

// --- Mock SaleService ---
type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) GetSale(ctx context.Context, saleID int64) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockSaleService) ListSales(ctx context.Context, params dto.ListSalesParams) (*dto.ListSalesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListSalesResponse), args.Error(1)
}
func (m *MockSaleService) UpdateSale(ctx context.Context, saleID int64, req dto.UpdateSaleRequest) (*domain.Sale, error) {
	args := m.Called(ctx, saleID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockSaleService) RecalculateCOGS(ctx context.Context, saleID int64) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockSaleService) SaveProductCOGS(ctx context.Context, req dto.SaveProductCOGSRequest) (*domain.BulkCOGSResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BulkCOGSResult), args.Error(1)
}
func (m *MockSaleService) ApplyRulesToAll(ctx context.Context, onlyMissing bool) (*domain.BulkCOGSResult, error) {
	args := m.Called(ctx, onlyMissing)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BulkCOGSResult), args.Error(1)
}

var _ portssvc.SaleSvcFacade = (*MockSaleService)(nil)

// --- Mock CatalogService ---
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetEntry(ctx context.Context, entryID int64) (*domain.CatalogEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogEntry), args.Error(1)
}
func (m *MockCatalogService) ListEntries(ctx context.Context) (*dto.ListCatalogResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListCatalogResponse), args.Error(1)
}
func (m *MockCatalogService) CreateEntry(ctx context.Context, req dto.CreateCatalogEntryRequest, userID string) (*domain.CatalogEntry, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogEntry), args.Error(1)
}
func (m *MockCatalogService) CreateEntryFromImage(ctx context.Context, req dto.CreateCatalogFromImageRequest, userID string) (*domain.CatalogEntry, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogEntry), args.Error(1)
}
func (m *MockCatalogService) UpdateEntry(ctx context.Context, entryID int64, req dto.UpdateCatalogEntryRequest, userID string) (*domain.CatalogEntry, error) {
	args := m.Called(ctx, entryID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogEntry), args.Error(1)
}
func (m *MockCatalogService) DeleteEntry(ctx context.Context, entryID int64) (int64, error) {
	args := m.Called(ctx, entryID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockCatalogService) RemapSale(ctx context.Context, saleID, entryID int64) (*domain.Sale, error) {
	args := m.Called(ctx, saleID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockCatalogService) UnmapSale(ctx context.Context, saleID int64) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockCatalogService) MarkMapped(ctx context.Context, entryID int64) (*domain.MarkMappedResult, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarkMappedResult), args.Error(1)
}

var _ portssvc.CatalogSvcFacade = (*MockCatalogService)(nil)

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

var _ portssvc.ShowSvc = (*MockShowService)(nil)

// --- Mock AnalyticsService ---
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) COGSCoverage(ctx context.Context) (*domain.COGSCoverage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.COGSCoverage), args.Error(1)
}
func (m *MockAnalyticsService) RulePerformance(ctx context.Context) ([]domain.RulePerformance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RulePerformance), args.Error(1)
}
func (m *MockAnalyticsService) CatalogRollup(ctx context.Context) (*domain.CatalogRollupReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogRollupReport), args.Error(1)
}
func (m *MockAnalyticsService) UnmappedSales(ctx context.Context, limit int) (int, []domain.Sale, error) {
	args := m.Called(ctx, limit)
	if args.Get(1) == nil {
		return args.Int(0), nil, args.Error(2)
	}
	return args.Int(0), args.Get(1).([]domain.Sale), args.Error(2)
}
func (m *MockAnalyticsService) UnmappedSingles(ctx context.Context) (*domain.CatalogEntry, []domain.UnmappedSingle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.CatalogEntry), args.Get(1).([]domain.UnmappedSingle), args.Error(2)
}
func (m *MockAnalyticsService) ProductsNeedingCOGS(ctx context.Context, limit int) ([]domain.ProductNeedingCOGS, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductNeedingCOGS), args.Error(1)
}
func (m *MockAnalyticsService) ExportReport(ctx context.Context, w io.Writer) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

var _ portssvc.AnalyticsSvc = (*MockAnalyticsService)(nil)

// handlerSuite holds the router and token helpers shared by the handler suites.
type handlerSuite struct {
	suite.Suite
	router    *gin.Engine
	v1        *gin.RouterGroup
	jwtSecret string
}

func (s *handlerSuite) setupRouter() {
	gin.SetMode(gin.TestMode)
	s.jwtSecret = "test-secret-key-that-is-long-enough"
	s.router = gin.New()
	s.router.Use(middleware.AuthMiddleware(s.jwtSecret))
	s.v1 = s.router.Group("/api/v1")
}

// generateTestToken creates a dummy JWT for testing.
func (s *handlerSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "kanto-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		s.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

// do sends an authenticated request and records the response.
func (s *handlerSuite) do(method, url, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, _ := http.NewRequest(method, url, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+s.generateTestToken("operator-1"))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}
