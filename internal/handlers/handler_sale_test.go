package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/kantocollect/salesops/internal/apperrors"
	"github.com/kantocollect/salesops/internal/core/domain"
	"github.com/kantocollect/salesops/internal/dto"
	"github.com/kantocollect/salesops/internal/handlers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SaleHandlerTestSuite struct {
	handlerSuite
	mockSaleService    *MockSaleService
	mockCatalogService *MockCatalogService
}

func (suite *SaleHandlerTestSuite) SetupTest() {
	suite.setupRouter()
	suite.mockSaleService = new(MockSaleService)
	suite.mockCatalogService = new(MockCatalogService)
	handlers.RegisterSaleRoutes(suite.v1, suite.mockSaleService, suite.mockCatalogService)
}

func (suite *SaleHandlerTestSuite) TearDownTest() {
	suite.mockSaleService.AssertExpectations(suite.T())
	suite.mockCatalogService.AssertExpectations(suite.T())
}

func (suite *SaleHandlerTestSuite) TestListSales_Filters() {
	next := "MjA="
	suite.mockSaleService.On("ListSales", mock.Anything, mock.MatchedBy(func(p dto.ListSalesParams) bool {
		return p.ShowID != nil && *p.ShowID == 7 && p.MissingCOGS && p.Limit == 20 && p.Owner == "Nima"
	})).Return(&dto.ListSalesResponse{Sales: []domain.Sale{{SaleID: 1}}, NextToken: &next}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/sales?showID=7&missingCogs=true&limit=20&owner=Nima", "")

	suite.Equal(http.StatusOK, w.Code)
	var got dto.ListSalesResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Require().NotNil(got.NextToken)
	suite.Equal(next, *got.NextToken)
}

func (suite *SaleHandlerTestSuite) TestListSales_DefaultLimit() {
	suite.mockSaleService.On("ListSales", mock.Anything, mock.MatchedBy(func(p dto.ListSalesParams) bool {
		return p.Limit == 50
	})).Return(&dto.ListSalesResponse{Sales: []domain.Sale{}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/sales", "")

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *SaleHandlerTestSuite) TestListSales_InvalidQuery() {
	cases := map[string]string{
		"unknown owner":     "/api/v1/sales?owner=Bob",
		"unknown sale type": "/api/v1/sales?saleType=auction",
		"limit too large":   "/api/v1/sales?limit=5000",
	}
	for name, url := range cases {
		suite.Run(name, func() {
			w := suite.do(http.MethodGet, url, "")
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.mockSaleService.AssertNotCalled(suite.T(), "ListSales", mock.Anything, mock.Anything)
}

func (suite *SaleHandlerTestSuite) TestUpdateSale_ManualCOGS() {
	cogs := decimal.RequireFromString("12.00")
	suite.mockSaleService.On("UpdateSale", mock.Anything, int64(5), mock.MatchedBy(func(req dto.UpdateSaleRequest) bool {
		return req.COGS != nil && req.COGS.Equal(cogs) && !req.ClearCOGS
	})).Return(&domain.Sale{SaleID: 5, COGS: &cogs}, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/sales/5", `{"cogs":"12.00"}`)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *SaleHandlerTestSuite) TestUpdateSale_InvalidOwner() {
	w := suite.do(http.MethodPut, "/api/v1/sales/5", `{"owner":"Someone"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSaleService.AssertNotCalled(suite.T(), "UpdateSale", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SaleHandlerTestSuite) TestRecalculateCOGS_NotFound() {
	suite.mockSaleService.On("RecalculateCOGS", mock.Anything, int64(99)).
		Return(nil, fmt.Errorf("%w: sale 99", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodPost, "/api/v1/sales/99/recalculate-cogs", "")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`{"error":"Sale not found"}`, w.Body.String())
}

func (suite *SaleHandlerTestSuite) TestRemapSale() {
	entryID := int64(4)
	keyword := domain.ManualKeyword
	suite.mockCatalogService.On("RemapSale", mock.Anything, int64(5), int64(4)).
		Return(&domain.Sale{SaleID: 5, CatalogItemID: &entryID, IsMapped: true, MatchedKeyword: &keyword}, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/sales/5/catalog-mapping", `{"catalogItemID":4}`)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"matchedKeyword":"manual"`)
}

func (suite *SaleHandlerTestSuite) TestRemapSale_MissingEntry() {
	w := suite.do(http.MethodPut, "/api/v1/sales/5/catalog-mapping", `{}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *SaleHandlerTestSuite) TestUnmapSale() {
	suite.mockCatalogService.On("UnmapSale", mock.Anything, int64(5)).
		Return(&domain.Sale{SaleID: 5}, nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/sales/5/catalog-mapping", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"isMapped":false`)
}

func (suite *SaleHandlerTestSuite) TestApplyRules() {
	suite.Run("empty body applies to every sale", func() {
		suite.mockSaleService.On("ApplyRulesToAll", mock.Anything, false).
			Return(&domain.BulkCOGSResult{Scanned: 10, Matched: 8, Updated: 3, Unchanged: 5}, nil).Once()
		w := suite.do(http.MethodPost, "/api/v1/cogs/apply-rules", "")
		suite.Equal(http.StatusOK, w.Code)
	})
	suite.Run("only missing", func() {
		suite.mockSaleService.On("ApplyRulesToAll", mock.Anything, true).
			Return(&domain.BulkCOGSResult{Scanned: 2, Matched: 2, Updated: 2}, nil).Once()
		w := suite.do(http.MethodPost, "/api/v1/cogs/apply-rules", `{"onlyMissing":true}`)
		suite.Equal(http.StatusOK, w.Code)
	})
	suite.Run("malformed body", func() {
		w := suite.do(http.MethodPost, "/api/v1/cogs/apply-rules", `{"onlyMissing":`)
		suite.Equal(http.StatusBadRequest, w.Code)
	})
}

func TestSaleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SaleHandlerTestSuite))
}
