package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/kantocollect/salesops/internal/apperrors"
	"github.com/kantocollect/salesops/internal/core/domain"
	portssvc "github.com/kantocollect/salesops/internal/core/ports/services"
	"github.com/kantocollect/salesops/internal/core/services"
	"github.com/kantocollect/salesops/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type COGSRuleServiceTestSuite struct {
	suite.Suite
	ruleRepo *MockCOGSRuleRepository
	saleRepo *MockSaleRepository
	service  portssvc.COGSRuleSvcFacade
	ctx      context.Context
}

func (suite *COGSRuleServiceTestSuite) SetupTest() {
	suite.ruleRepo = new(MockCOGSRuleRepository)
	suite.saleRepo = new(MockSaleRepository)
	suite.service = services.NewCOGSRuleService(suite.ruleRepo, suite.saleRepo, services.WithDefaultRuleTestLimit(2))
	suite.ctx = context.Background()
}

func (suite *COGSRuleServiceTestSuite) TearDownTest() {
	suite.ruleRepo.AssertExpectations(suite.T())
	suite.saleRepo.AssertExpectations(suite.T())
}

func (suite *COGSRuleServiceTestSuite) TestCreateRule_Defaults() {
	var saved domain.COGSRule
	suite.ruleRepo.On("SaveRule", suite.ctx, mock.AnythingOfType("domain.COGSRule")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.COGSRule) }).
		Return(int64(7), nil).Once()

	created, err := suite.service.CreateRule(suite.ctx, dto.CreateCOGSRuleRequest{
		Name:     " Booster Box ",
		Keywords: []string{" booster box ", ""},
		UnitCost: dec("95.50"),
		Category: strPtr("  "),
	})

	suite.Require().NoError(err)
	suite.Equal(int64(7), created.RuleID)
	suite.Equal("Booster Box", saved.Name)
	suite.Equal([]string{"booster box"}, saved.Keywords)
	suite.Equal(domain.MatchContains, saved.MatchMode)
	suite.True(saved.IsActive)
	suite.Nil(saved.Category)
}

func (suite *COGSRuleServiceTestSuite) TestCreateRule_Validation() {
	cases := map[string]dto.CreateCOGSRuleRequest{
		"punctuation only keywords": {Name: "x", Keywords: []string{"!!", "()"}, UnitCost: dec("1")},
		"negative cost":             {Name: "x", Keywords: []string{"etb"}, UnitCost: dec("-1")},
		"sub-cent cost":             {Name: "x", Keywords: []string{"etb"}, UnitCost: dec("3.335")},
		"unknown mode":              {Name: "x", Keywords: []string{"etb"}, UnitCost: dec("1"), MatchMode: "fuzzy"},
		"blank name":                {Name: "  ", Keywords: []string{"etb"}, UnitCost: dec("1")},
	}
	for name, req := range cases {
		suite.Run(name, func() {
			_, err := suite.service.CreateRule(suite.ctx, req)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.ruleRepo.AssertNotCalled(suite.T(), "SaveRule", mock.Anything, mock.Anything)
}

func (suite *COGSRuleServiceTestSuite) TestCreateRule_DuplicateName() {
	suite.ruleRepo.On("SaveRule", suite.ctx, mock.AnythingOfType("domain.COGSRule")).
		Return(int64(0), fmt.Errorf("rule %q: %w", "ETB", apperrors.ErrDuplicate)).Once()

	_, err := suite.service.CreateRule(suite.ctx, dto.CreateCOGSRuleRequest{Name: "ETB", Keywords: []string{"etb"}, UnitCost: dec("40")})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *COGSRuleServiceTestSuite) TestListRules_FillsMatchCounts() {
	suite.ruleRepo.On("ListRules", suite.ctx, false).Return([]domain.COGSRule{
		rule(1, "ETB", 100, "40", "etb"),
		rule(2, "Box", 50, "90", "booster box"),
	}, nil).Once()
	suite.saleRepo.On("RuleUsage", suite.ctx).Return([]domain.RuleUsage{{RuleID: 2, Matches: 5, TotalCOGS: dec("450")}}, nil).Once()

	rules, err := suite.service.ListRules(suite.ctx, false)

	suite.Require().NoError(err)
	suite.Require().Len(rules, 2)
	suite.Zero(rules[0].MatchCount)
	suite.Equal(5, rules[1].MatchCount)
}

func (suite *COGSRuleServiceTestSuite) TestUpdateRule_PartialFields() {
	existing := rule(1, "ETB", 100, "40", "etb")
	suite.ruleRepo.On("FindRuleByID", suite.ctx, int64(1)).Return(&existing, nil).Once()
	suite.ruleRepo.On("UpdateRule", suite.ctx, mock.MatchedBy(func(r domain.COGSRule) bool {
		return r.Name == "ETB" && r.Priority == 300 && r.UnitCost.Equal(dec("42"))
	})).Return(nil).Once()

	priority := 300
	cost := dec("42")
	updated, err := suite.service.UpdateRule(suite.ctx, 1, dto.UpdateCOGSRuleRequest{Priority: &priority, UnitCost: &cost})

	suite.Require().NoError(err)
	suite.Equal(300, updated.Priority)
}

func (suite *COGSRuleServiceTestSuite) TestToggleRule() {
	existing := rule(1, "ETB", 100, "40", "etb")
	suite.ruleRepo.On("FindRuleByID", suite.ctx, int64(1)).Return(&existing, nil).Once()
	suite.ruleRepo.On("UpdateRule", suite.ctx, mock.MatchedBy(func(r domain.COGSRule) bool { return !r.IsActive })).Return(nil).Once()

	toggled, err := suite.service.ToggleRule(suite.ctx, 1)

	suite.Require().NoError(err)
	suite.False(toggled.IsActive)
}

func (suite *COGSRuleServiceTestSuite) TestDeleteRule_NotFound() {
	suite.ruleRepo.On("DeleteRule", suite.ctx, int64(99)).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteRule(suite.ctx, 99)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *COGSRuleServiceTestSuite) TestTestRule_DefaultLimitKeepsTotal() {
	suite.saleRepo.On("ListDistinctItemNames", suite.ctx, 1000).Return([]string{
		"151 ETB",
		"Surging Sparks ETB",
		"Prismatic ETB",
		"OP14 Booster Box",
	}, nil).Once()

	result, err := suite.service.TestRule(suite.ctx, dto.TestCOGSRuleRequest{Keywords: []string{"ETB"}})

	suite.Require().NoError(err)
	suite.Equal(4, result.ProductsScanned)
	suite.Equal(3, result.TotalMatches)
	suite.Len(result.Matches, 2)
	suite.Equal("etb", result.Matches[0].MatchedKeyword)
}

func (suite *COGSRuleServiceTestSuite) TestTestRule_StartsWith() {
	suite.saleRepo.On("ListDistinctItemNames", suite.ctx, 1000).Return([]string{"OP14 Booster Box", "Box of OP14"}, nil).Once()

	result, err := suite.service.TestRule(suite.ctx, dto.TestCOGSRuleRequest{
		Keywords:  []string{"op14"},
		MatchMode: domain.MatchStartsWith,
		Limit:     10,
	})

	suite.Require().NoError(err)
	suite.Equal(1, result.TotalMatches)
	suite.Equal("OP14 Booster Box", result.Matches[0].ItemName)
}

func (suite *COGSRuleServiceTestSuite) TestTestRule_InvalidMode() {
	_, err := suite.service.TestRule(suite.ctx, dto.TestCOGSRuleRequest{Keywords: []string{"etb"}, MatchMode: "regex"})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestCOGSRuleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(COGSRuleServiceTestSuite))
}
