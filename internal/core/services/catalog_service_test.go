package services_test

import (
	"context"
	"testing"

	"github.com/kantocollect/salesops/internal/apperrors"
	"github.com/kantocollect/salesops/internal/core/domain"
	portssvc "github.com/kantocollect/salesops/internal/core/ports/services"
	"github.com/kantocollect/salesops/internal/core/services"
	"github.com/kantocollect/salesops/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	catalogRepo *MockCatalogRepository
	saleRepo    *MockSaleRepository
	service     portssvc.CatalogSvcFacade
	ctx         context.Context
}

func (suite *CatalogServiceTestSuite) SetupTest() {
	suite.catalogRepo = new(MockCatalogRepository)
	suite.saleRepo = new(MockSaleRepository)
	suite.service = services.NewCatalogService(suite.catalogRepo, suite.saleRepo)
	suite.ctx = context.Background()
}

func (suite *CatalogServiceTestSuite) TearDownTest() {
	suite.catalogRepo.AssertExpectations(suite.T())
	suite.saleRepo.AssertExpectations(suite.T())
}

func mappedTo(s domain.Sale, entryID int64) domain.Sale {
	s.IsMapped = true
	s.CatalogItemID = int64Ptr(entryID)
	s.MatchedKeyword = strPtr(domain.ManualKeyword)
	return s
}

// --- Create ---

func (suite *CatalogServiceTestSuite) TestCreateEntry_Defaults() {
	var saved domain.CatalogEntry
	suite.catalogRepo.On("FindEntryByName", suite.ctx, "151 Elite Trainer Box").Return(nil, apperrors.ErrNotFound).Once()
	suite.catalogRepo.On("SaveEntry", suite.ctx, mock.AnythingOfType("domain.CatalogEntry")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.CatalogEntry) }).
		Return(int64(3), nil).Once()

	entry, err := suite.service.CreateEntry(suite.ctx, dto.CreateCatalogEntryRequest{
		Name:            " 151 Elite Trainer Box ",
		IncludeKeywords: []string{"151 etb", "151 elite trainer box"},
	}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(int64(3), entry.EntryID)
	suite.Equal(domain.RuleIncludeAny, saved.RuleKind)
	suite.Equal(domain.DefaultCatalogPriority, saved.Priority)
	suite.Equal("ETB", saved.Category)
	suite.Equal("user-1", saved.CreatedBy)
}

func (suite *CatalogServiceTestSuite) TestCreateEntry_CatchAllNeedsNoKeywords() {
	suite.catalogRepo.On("FindEntryByName", suite.ctx, "Everything Else").Return(nil, apperrors.ErrNotFound).Once()
	suite.catalogRepo.On("SaveEntry", suite.ctx, mock.MatchedBy(func(e domain.CatalogEntry) bool {
		return e.RuleKind == domain.RuleCatchAll && e.Priority == domain.CatchAllCatalogPriority
	})).Return(int64(4), nil).Once()

	_, err := suite.service.CreateEntry(suite.ctx, dto.CreateCatalogEntryRequest{
		Name:     "Everything Else",
		RuleKind: domain.RuleCatchAll,
	}, "user-1")

	suite.Require().NoError(err)
}

func (suite *CatalogServiceTestSuite) TestCreateEntry_KeywordlessEntryRejected() {
	_, err := suite.service.CreateEntry(suite.ctx, dto.CreateCatalogEntryRequest{
		Name:     "Booster Bundle",
		RuleKind: domain.RuleIncludeAll,
	}, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.catalogRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *CatalogServiceTestSuite) TestCreateEntry_DuplicateName() {
	existing := catalogEntry(8, "Booster Bundle", domain.RuleIncludeAny, 100, "bundle")
	suite.catalogRepo.On("FindEntryByName", suite.ctx, "Booster Bundle").Return(&existing, nil).Once()

	_, err := suite.service.CreateEntry(suite.ctx, dto.CreateCatalogEntryRequest{
		Name:            "Booster Bundle",
		IncludeKeywords: []string{"bundle"},
	}, "user-1")

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *CatalogServiceTestSuite) TestCreateEntryFromImage() {
	const url = "https://cdn.example.com/items/Prismatic%20Evolutions%20Elite%20Trainer%20Box.png?updatedAt=17"
	var saved domain.CatalogEntry

	suite.catalogRepo.On("FindEntryByImageURLPrefix", suite.ctx,
		"https://cdn.example.com/items/Prismatic%20Evolutions%20Elite%20Trainer%20Box.png").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.catalogRepo.On("FindEntryByName", suite.ctx, "Prismatic Evolutions Elite Trainer Box").Return(nil, apperrors.ErrNotFound).Once()
	suite.catalogRepo.On("SaveEntry", suite.ctx, mock.AnythingOfType("domain.CatalogEntry")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.CatalogEntry) }).
		Return(int64(11), nil).Once()

	entry, err := suite.service.CreateEntryFromImage(suite.ctx, dto.CreateCatalogFromImageRequest{ImageURL: url}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(int64(11), entry.EntryID)
	suite.Equal("ETB", saved.Category)
	suite.Equal("Prismatic Evolutions Elite Trainer Box.png", saved.ImageFilename)
	suite.Contains(saved.IncludeKeywords, "etb")
	suite.Contains(saved.IncludeKeywords, "prismatic evolutions elite trainer box")
}

func (suite *CatalogServiceTestSuite) TestCreateEntryFromImage_DuplicateImage() {
	existing := catalogEntry(2, "Prismatic ETB", domain.RuleIncludeAny, 100, "etb")
	suite.catalogRepo.On("FindEntryByImageURLPrefix", suite.ctx, mock.AnythingOfType("string")).Return(&existing, nil).Once()

	_, err := suite.service.CreateEntryFromImage(suite.ctx, dto.CreateCatalogFromImageRequest{
		ImageURL: "https://cdn.example.com/items/Prismatic%20ETB.png?v=2",
	}, "user-1")

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.catalogRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

// --- Update / Delete ---

func (suite *CatalogServiceTestSuite) TestUpdateEntry_RenameToTakenName() {
	current := catalogEntry(1, "ETB", domain.RuleIncludeAny, 100, "etb")
	other := catalogEntry(2, "Booster Box", domain.RuleIncludeAny, 100, "booster box")
	suite.catalogRepo.On("FindEntryByID", suite.ctx, int64(1)).Return(&current, nil).Once()
	suite.catalogRepo.On("FindEntryByName", suite.ctx, "Booster Box").Return(&other, nil).Once()

	_, err := suite.service.UpdateEntry(suite.ctx, 1, dto.UpdateCatalogEntryRequest{Name: strPtr("Booster Box")}, "user-1")

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *CatalogServiceTestSuite) TestDeleteEntry_ReportsUnmappedSales() {
	suite.catalogRepo.On("DeleteEntry", suite.ctx, int64(5)).Return(int64(12), nil).Once()

	unmapped, err := suite.service.DeleteEntry(suite.ctx, 5)

	suite.Require().NoError(err)
	suite.Equal(int64(12), unmapped)
}

// --- Mapping ---

func (suite *CatalogServiceTestSuite) TestRemapSale_RecordsManualKeyword() {
	entry := catalogEntry(2, "Booster Box", domain.RuleIncludeAny, 100, "booster box")
	sale := streamSale(1, 10, "weird listing", 1, "100")

	suite.catalogRepo.On("FindEntryByID", suite.ctx, int64(2)).Return(&entry, nil).Once()
	suite.saleRepo.On("FindSaleByID", suite.ctx, int64(1)).Return(&sale, nil).Once()
	suite.saleRepo.On("UpdateSaleMapping", suite.ctx, mock.MatchedBy(func(m domain.SaleMapping) bool {
		return m.SaleID == 1 && m.IsMapped && *m.CatalogItemID == 2 && *m.MatchedKeyword == domain.ManualKeyword && m.MappedAt != nil
	})).Return(nil).Once()

	got, err := suite.service.RemapSale(suite.ctx, 1, 2)

	suite.Require().NoError(err)
	suite.True(got.IsMapped)
	suite.Equal(int64(2), *got.CatalogItemID)
}

func (suite *CatalogServiceTestSuite) TestUnmapSale_NoopWhenNotMapped() {
	sale := streamSale(1, 10, "weird listing", 1, "100")
	suite.saleRepo.On("FindSaleByID", suite.ctx, int64(1)).Return(&sale, nil).Once()

	_, err := suite.service.UnmapSale(suite.ctx, 1)

	suite.Require().NoError(err)
	suite.saleRepo.AssertNotCalled(suite.T(), "UpdateSaleMapping", mock.Anything, mock.Anything)
}

func (suite *CatalogServiceTestSuite) TestMarkMapped_KeepsManualMappings() {
	etb := catalogEntry(1, "ETB", domain.RuleIncludeAny, 100, "etb")
	box := catalogEntry(2, "Booster Box", domain.RuleIncludeAny, 100, "booster box")
	sales := []domain.Sale{
		streamSale(1, 10, "151 ETB", 1, "60"),
		mappedTo(streamSale(2, 10, "Surging ETB", 1, "60"), 2),
		mappedTo(streamSale(3, 10, "Old ETB", 1, "60"), 1),
		streamSale(4, 10, "OP14 Booster Box", 1, "110"),
	}
	var batch []domain.SaleMapping

	suite.catalogRepo.On("FindEntryByID", suite.ctx, int64(1)).Return(&etb, nil).Once()
	suite.catalogRepo.On("ListEntries", suite.ctx).Return([]domain.CatalogEntry{etb, box}, nil).Once()
	suite.saleRepo.On("ListAllSales", suite.ctx).Return(sales, nil).Once()
	suite.saleRepo.On("SaveMappingBatch", suite.ctx, mock.AnythingOfType("[]domain.SaleMapping")).
		Run(func(args mock.Arguments) { batch = args.Get(1).([]domain.SaleMapping) }).
		Return(map[int64]error{}, nil).Once()

	result, err := suite.service.MarkMapped(suite.ctx, 1)

	suite.Require().NoError(err)
	suite.Equal(1, result.NewlyMapped)
	suite.Equal(1, result.AlreadyMapped)
	suite.Equal(1, result.SkippedConflicts)
	suite.Zero(result.Errored)
	suite.Require().Len(batch, 1)
	suite.Equal(int64(1), batch[0].SaleID)
	suite.Equal("etb", *batch[0].MatchedKeyword)
}

func (suite *CatalogServiceTestSuite) TestMarkMapped_CatchAllRecordsSource() {
	etb := catalogEntry(1, "ETB", domain.RuleIncludeAny, 100, "etb")
	rest := catalogEntry(9, "Everything Else", domain.RuleCatchAll, 0)
	var batch []domain.SaleMapping

	suite.catalogRepo.On("FindEntryByID", suite.ctx, int64(9)).Return(&rest, nil).Once()
	suite.catalogRepo.On("ListEntries", suite.ctx).Return([]domain.CatalogEntry{etb, rest}, nil).Once()
	suite.saleRepo.On("ListAllSales", suite.ctx).Return([]domain.Sale{
		streamSale(1, 10, "151 ETB", 1, "60"),
		streamSale(2, 10, "Loose pack", 1, "4"),
	}, nil).Once()
	suite.saleRepo.On("SaveMappingBatch", suite.ctx, mock.AnythingOfType("[]domain.SaleMapping")).
		Run(func(args mock.Arguments) { batch = args.Get(1).([]domain.SaleMapping) }).
		Return(map[int64]error{}, nil).Once()

	result, err := suite.service.MarkMapped(suite.ctx, 9)

	suite.Require().NoError(err)
	suite.Equal(1, result.NewlyMapped)
	suite.Require().Len(batch, 1)
	suite.Equal(int64(2), batch[0].SaleID)
	suite.Equal("catch_all", *batch[0].MatchedKeyword)
}

func (suite *CatalogServiceTestSuite) TestListEntries_ReportsShadowedCatchAll() {
	suite.catalogRepo.On("ListEntries", suite.ctx).Return([]domain.CatalogEntry{
		catalogEntry(3, "Rest B", domain.RuleCatchAll, 0),
		catalogEntry(2, "Rest A", domain.RuleCatchAll, 0),
		catalogEntry(1, "ETB", domain.RuleIncludeAny, 100, "etb"),
	}, nil).Once()

	resp, err := suite.service.ListEntries(suite.ctx)

	suite.Require().NoError(err)
	suite.Require().Len(resp.Entries, 3)
	suite.Equal(int64(1), resp.Entries[0].EntryID)
	suite.Equal([]int64{3}, resp.IgnoredCatchAll)
}

func TestCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}
