package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kantocollect/salesops/internal/apperrors"
	"github.com/kantocollect/salesops/internal/core/domain"
	"github.com/kantocollect/salesops/internal/dto"
	"github.com/kantocollect/salesops/internal/handlers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type COGSRuleHandlerTestSuite struct {
	handlerSuite
	mockRuleService *MockCOGSRuleService
}

func (suite *COGSRuleHandlerTestSuite) SetupTest() {
	suite.setupRouter()
	suite.mockRuleService = new(MockCOGSRuleService)
	handlers.RegisterCOGSRuleRoutes(suite.v1, suite.mockRuleService)
}

func (suite *COGSRuleHandlerTestSuite) TearDownTest() {
	suite.mockRuleService.AssertExpectations(suite.T())
}

func (suite *COGSRuleHandlerTestSuite) TestMissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/cogs-rules", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockRuleService.AssertNotCalled(suite.T(), "ListRules")
}

func (suite *COGSRuleHandlerTestSuite) TestListRules_ActiveOnly() {
	rules := []domain.COGSRule{
		{RuleID: 2, Name: "ETB", Keywords: []string{"etb"}, UnitCost: decimal.NewFromInt(40), MatchMode: domain.MatchContains, Priority: 50, IsActive: true, MatchCount: 7},
		{RuleID: 1, Name: "Pack", Keywords: []string{"pack"}, UnitCost: decimal.NewFromInt(4), MatchMode: domain.MatchContains, Priority: 10, IsActive: true},
	}
	suite.mockRuleService.On("ListRules", mock.Anything, true).Return(rules, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/cogs-rules?activeOnly=true", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListCOGSRulesResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Rules, 2)
	suite.Equal(int64(2), resp.Rules[0].RuleID)
	suite.Equal(7, resp.Rules[0].MatchCount)
}

func (suite *COGSRuleHandlerTestSuite) TestCreateRule_Created() {
	body := `{"name":"Prismatic ETB","keywords":["prismatic etb"],"unitCost":"62.50","matchMode":"contains","priority":80}`
	created := &domain.COGSRule{RuleID: 9, Name: "Prismatic ETB", Keywords: []string{"prismatic etb"}, UnitCost: decimal.RequireFromString("62.50"), MatchMode: domain.MatchContains, Priority: 80, IsActive: true}
	suite.mockRuleService.On("CreateRule", mock.Anything, mock.MatchedBy(func(req dto.CreateCOGSRuleRequest) bool {
		return req.Name == "Prismatic ETB" && req.Priority == 80 && req.UnitCost.Equal(decimal.RequireFromString("62.5"))
	})).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/cogs-rules", body)

	suite.Equal(http.StatusCreated, w.Code)
	var rule domain.COGSRule
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &rule))
	suite.Equal(int64(9), rule.RuleID)
}

func (suite *COGSRuleHandlerTestSuite) TestCreateRule_InvalidMatchMode() {
	w := suite.do(http.MethodPost, "/api/v1/cogs-rules", `{"name":"x","keywords":["x"],"matchMode":"fuzzy"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRuleService.AssertNotCalled(suite.T(), "CreateRule", mock.Anything, mock.Anything)
}

func (suite *COGSRuleHandlerTestSuite) TestCreateRule_MissingKeywords() {
	w := suite.do(http.MethodPost, "/api/v1/cogs-rules", `{"name":"x","keywords":[]}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *COGSRuleHandlerTestSuite) TestCreateRule_DuplicateName() {
	suite.mockRuleService.On("CreateRule", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: rule %q already exists", apperrors.ErrDuplicate, "ETB")).Once()

	w := suite.do(http.MethodPost, "/api/v1/cogs-rules", `{"name":"ETB","keywords":["etb"]}`)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *COGSRuleHandlerTestSuite) TestCreateRule_ServiceValidation() {
	suite.mockRuleService.On("CreateRule", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: unit cost must not be negative", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPost, "/api/v1/cogs-rules", `{"name":"ETB","keywords":["etb"],"unitCost":-1}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "unit cost must not be negative")
}

func (suite *COGSRuleHandlerTestSuite) TestGetRule() {
	suite.Run("bad id", func() {
		w := suite.do(http.MethodGet, "/api/v1/cogs-rules/abc", "")
		suite.Equal(http.StatusBadRequest, w.Code)
	})
	suite.Run("zero id", func() {
		w := suite.do(http.MethodGet, "/api/v1/cogs-rules/0", "")
		suite.Equal(http.StatusBadRequest, w.Code)
	})
	suite.Run("not found", func() {
		suite.mockRuleService.On("GetRule", mock.Anything, int64(404)).
			Return(nil, fmt.Errorf("%w: rule 404", apperrors.ErrNotFound)).Once()
		w := suite.do(http.MethodGet, "/api/v1/cogs-rules/404", "")
		suite.Equal(http.StatusNotFound, w.Code)
		suite.JSONEq(`{"error":"Rule not found"}`, w.Body.String())
	})
	suite.Run("unexpected failure", func() {
		suite.mockRuleService.On("GetRule", mock.Anything, int64(5)).
			Return(nil, fmt.Errorf("connection reset")).Once()
		w := suite.do(http.MethodGet, "/api/v1/cogs-rules/5", "")
		suite.Equal(http.StatusInternalServerError, w.Code)
		suite.NotContains(w.Body.String(), "connection reset")
	})
}

func (suite *COGSRuleHandlerTestSuite) TestUpdateRule_PartialBody() {
	suite.mockRuleService.On("UpdateRule", mock.Anything, int64(3), mock.MatchedBy(func(req dto.UpdateCOGSRuleRequest) bool {
		return req.Priority != nil && *req.Priority == 90 && req.Name == nil && req.UnitCost == nil
	})).Return(&domain.COGSRule{RuleID: 3, Priority: 90}, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/cogs-rules/3", `{"priority":90}`)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *COGSRuleHandlerTestSuite) TestDeleteRule_NoContent() {
	suite.mockRuleService.On("DeleteRule", mock.Anything, int64(3)).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/cogs-rules/3", "")

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.String())
}

func (suite *COGSRuleHandlerTestSuite) TestToggleRule() {
	suite.mockRuleService.On("ToggleRule", mock.Anything, int64(3)).
		Return(&domain.COGSRule{RuleID: 3, IsActive: false}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/cogs-rules/3/toggle", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"isActive":false`)
}

func (suite *COGSRuleHandlerTestSuite) TestTestRule() {
	result := &domain.RuleTestResult{
		ProductsScanned: 120,
		TotalMatches:    1,
		Matches:         []domain.RuleTestMatch{{ItemName: "Surging Sparks ETB", MatchedKeyword: "etb"}},
	}
	suite.mockRuleService.On("TestRule", mock.Anything, mock.MatchedBy(func(req dto.TestCOGSRuleRequest) bool {
		return len(req.Keywords) == 1 && req.MatchMode == domain.MatchEndsWith
	})).Return(result, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/cogs-rules/test", `{"keywords":["etb"],"matchMode":"ends_with"}`)

	suite.Equal(http.StatusOK, w.Code)
	var got domain.RuleTestResult
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(120, got.ProductsScanned)
	suite.Equal("etb", got.Matches[0].MatchedKeyword)
}

func TestCOGSRuleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(COGSRuleHandlerTestSuite))
}
