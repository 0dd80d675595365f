package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kantocollect/salesops/internal/apperrors"
	"github.com/kantocollect/salesops/internal/core/catalogmatch"
	"github.com/kantocollect/salesops/internal/core/domain"
	portsrepo "github.com/kantocollect/salesops/internal/core/ports/repositories"
	portssvc "github.com/kantocollect/salesops/internal/core/ports/services"
	"github.com/kantocollect/salesops/internal/dto"
)

type catalogService struct {
	BaseService
	catalogRepo portsrepo.CatalogRepositoryFacade
	saleRepo    portsrepo.SaleRepositoryFacade
}

// NewCatalogService creates the catalog service.
func NewCatalogService(catalogRepo portsrepo.CatalogRepositoryFacade, saleRepo portsrepo.SaleRepositoryFacade) portssvc.CatalogSvcFacade {
	return &catalogService{catalogRepo: catalogRepo, saleRepo: saleRepo}
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

func (s *catalogService) GetEntry(ctx context.Context, entryID int64) (*domain.CatalogEntry, error) {
	entry, err := s.catalogRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find catalog entry", slog.Int64("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

func (s *catalogService) ListEntries(ctx context.Context) (*dto.ListCatalogResponse, error) {
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ListCatalogResponse{Entries: catalog.Entries(), IgnoredCatchAll: catalog.IgnoredCatchAll}, nil
}

func (s *catalogService) CreateEntry(ctx context.Context, req dto.CreateCatalogEntryRequest, userID string) (*domain.CatalogEntry, error) {
	now := time.Now().UTC()
	entry := domain.CatalogEntry{
		Name:            strings.TrimSpace(req.Name),
		Category:        strings.TrimSpace(req.Category),
		ImageURL:        strings.TrimSpace(req.ImageURL),
		RuleKind:        req.RuleKind,
		IncludeKeywords: cleanKeywords(req.IncludeKeywords),
		ExcludeKeywords: cleanKeywords(req.ExcludeKeywords),
		Keywords:        cleanKeywords(req.Keywords),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if entry.RuleKind == "" {
		entry.RuleKind = domain.RuleIncludeAny
	}
	if entry.Category == "" {
		entry.Category = catalogmatch.CategorizeProduct(entry.Name)
	}
	if entry.ImageURL != "" {
		if draft, err := catalogmatch.DraftFromImageURL(entry.ImageURL); err == nil {
			entry.ImageFilename = draft.ImageFilename
		}
	}
	if req.Priority != nil {
		entry.Priority = *req.Priority
	} else {
		entry.Priority = defaultPriority(entry.RuleKind)
	}
	if err := validateEntry(entry); err != nil {
		return nil, err
	}
	if err := s.ensureNameFree(ctx, entry.Name, 0); err != nil {
		return nil, err
	}
	return s.save(ctx, entry)
}

func (s *catalogService) CreateEntryFromImage(ctx context.Context, req dto.CreateCatalogFromImageRequest, userID string) (*domain.CatalogEntry, error) {
	draft, err := catalogmatch.DraftFromImageURL(req.ImageURL)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, apperrors.ErrValidation)
	}

	existing, err := s.catalogRepo.FindEntryByImageURLPrefix(ctx, draft.URLPrefix)
	switch {
	case err == nil:
		return nil, fmt.Errorf("image already used by catalog entry %d (%s): %w", existing.EntryID, existing.Name, apperrors.ErrDuplicate)
	case !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to check catalog image", slog.String("image_url", draft.URLPrefix))
		return nil, err
	}
	if err := s.ensureNameFree(ctx, draft.Name, 0); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := domain.CatalogEntry{
		Name:            draft.Name,
		Category:        draft.Category,
		ImageURL:        draft.ImageURL,
		ImageFilename:   draft.ImageFilename,
		RuleKind:        domain.RuleIncludeAny,
		IncludeKeywords: draft.Keywords,
		ExcludeKeywords: []string{},
		Keywords:        []string{},
		Priority:        domain.DefaultCatalogPriority,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	return s.save(ctx, entry)
}

func (s *catalogService) save(ctx context.Context, entry domain.CatalogEntry) (*domain.CatalogEntry, error) {
	id, err := s.catalogRepo.SaveEntry(ctx, entry)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save catalog entry", slog.String("name", entry.Name))
		}
		return nil, err
	}
	entry.EntryID = id
	s.LogInfo(ctx, "Catalog entry created",
		slog.Int64("entry_id", id),
		slog.String("name", entry.Name),
		slog.String("rule_kind", string(entry.RuleKind)))
	return &entry, nil
}

func (s *catalogService) UpdateEntry(ctx context.Context, entryID int64, req dto.UpdateCatalogEntryRequest, userID string) (*domain.CatalogEntry, error) {
	entry, err := s.GetEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		entry.Name = strings.TrimSpace(*req.Name)
		if err := s.ensureNameFree(ctx, entry.Name, entryID); err != nil {
			return nil, err
		}
	}
	if req.Category != nil {
		entry.Category = strings.TrimSpace(*req.Category)
	}
	if req.ImageURL != nil {
		entry.ImageURL = strings.TrimSpace(*req.ImageURL)
		entry.ImageFilename = ""
		if draft, err := catalogmatch.DraftFromImageURL(entry.ImageURL); err == nil {
			entry.ImageFilename = draft.ImageFilename
		}
	}
	if req.RuleKind != nil {
		entry.RuleKind = *req.RuleKind
	}
	if req.IncludeKeywords != nil {
		entry.IncludeKeywords = cleanKeywords(req.IncludeKeywords)
	}
	if req.ExcludeKeywords != nil {
		entry.ExcludeKeywords = cleanKeywords(req.ExcludeKeywords)
	}
	if req.Keywords != nil {
		entry.Keywords = cleanKeywords(req.Keywords)
	}
	if req.Priority != nil {
		entry.Priority = *req.Priority
	}
	if err := validateEntry(*entry); err != nil {
		return nil, err
	}
	entry.LastUpdatedAt = time.Now().UTC()
	entry.LastUpdatedBy = userID

	if err := s.catalogRepo.UpdateEntry(ctx, *entry); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update catalog entry", slog.Int64("entry_id", entryID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Catalog entry updated", slog.Int64("entry_id", entryID))
	return entry, nil
}

func (s *catalogService) DeleteEntry(ctx context.Context, entryID int64) (int64, error) {
	unmapped, err := s.catalogRepo.DeleteEntry(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete catalog entry", slog.Int64("entry_id", entryID))
		}
		return 0, err
	}
	s.LogInfo(ctx, "Catalog entry deleted", slog.Int64("entry_id", entryID), slog.Int64("unmapped_sales", unmapped))
	return unmapped, nil
}

func (s *catalogService) RemapSale(ctx context.Context, saleID, entryID int64) (*domain.Sale, error) {
	if _, err := s.GetEntry(ctx, entryID); err != nil {
		return nil, err
	}
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	keyword := domain.ManualKeyword
	mapping := domain.SaleMapping{
		SaleID:         saleID,
		CatalogItemID:  &entryID,
		IsMapped:       true,
		MatchedKeyword: &keyword,
		MappedAt:       &now,
	}
	if err := s.saleRepo.UpdateSaleMapping(ctx, mapping); err != nil {
		s.LogError(ctx, err, "Failed to remap sale", slog.Int64("sale_id", saleID), slog.Int64("entry_id", entryID))
		return nil, err
	}
	applyMapping(sale, mapping)

	s.LogInfo(ctx, "Sale remapped", slog.Int64("sale_id", saleID), slog.Int64("entry_id", entryID))
	return sale, nil
}

func (s *catalogService) UnmapSale(ctx context.Context, saleID int64) (*domain.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if !sale.IsMapped && sale.CatalogItemID == nil {
		return sale, nil
	}

	mapping := domain.SaleMapping{SaleID: saleID}
	if err := s.saleRepo.UpdateSaleMapping(ctx, mapping); err != nil {
		s.LogError(ctx, err, "Failed to unmap sale", slog.Int64("sale_id", saleID))
		return nil, err
	}
	applyMapping(sale, mapping)

	s.LogInfo(ctx, "Sale unmapped", slog.Int64("sale_id", saleID))
	return sale, nil
}

func (s *catalogService) MarkMapped(ctx context.Context, entryID int64) (*domain.MarkMappedResult, error) {
	if _, err := s.GetEntry(ctx, entryID); err != nil {
		return nil, err
	}
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.saleRepo.ListAllSales(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load sales for mark-mapped")
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}

	result := &domain.MarkMappedResult{EntryID: entryID}
	now := time.Now().UTC()
	var pending []domain.SaleMapping
	for _, sale := range sales {
		manualID, manual := catalogmatch.ManualEntryID(sale)
		if manual && manualID == entryID {
			result.AlreadyMapped++
			continue
		}
		res, ok := catalog.Match(sale.ItemName)
		if !ok || res.EntryID != entryID {
			continue
		}
		if manual {
			result.SkippedConflicts++
			continue
		}
		keyword := res.Keyword
		if keyword == "" {
			keyword = string(res.Source)
		}
		id := entryID
		at := now
		pending = append(pending, domain.SaleMapping{
			SaleID:         sale.SaleID,
			CatalogItemID:  &id,
			IsMapped:       true,
			MatchedKeyword: &keyword,
			MappedAt:       &at,
		})
	}

	failed, err := s.saleRepo.SaveMappingBatch(ctx, pending)
	if err != nil {
		s.LogError(ctx, err, "Failed to store mappings", slog.Int64("entry_id", entryID), slog.Int("rows", len(pending)))
		return nil, fmt.Errorf("failed to store mappings: %w", err)
	}
	for saleID, rowErr := range failed {
		s.LogWarn(ctx, "Sale mapping not stored", slog.Int64("sale_id", saleID), slog.String("error", rowErr.Error()))
	}
	result.Errored = len(failed)
	result.NewlyMapped = len(pending) - len(failed)

	s.LogInfo(ctx, "Catalog entry confirmed",
		slog.Int64("entry_id", entryID),
		slog.Int("newly_mapped", result.NewlyMapped),
		slog.Int("already_mapped", result.AlreadyMapped),
		slog.Int("conflicts", result.SkippedConflicts))
	return result, nil
}

func (s *catalogService) loadCatalog(ctx context.Context) (*catalogmatch.Catalog, error) {
	entries, err := s.catalogRepo.ListEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list catalog entries")
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}
	catalog := catalogmatch.NewCatalog(entries)
	if len(catalog.IgnoredCatchAll) > 0 {
		s.LogWarn(ctx, "Catch-all entries shadowed by a higher ranked one", slog.Any("entry_ids", catalog.IgnoredCatchAll))
	}
	return catalog, nil
}

func (s *catalogService) ensureNameFree(ctx context.Context, name string, selfID int64) error {
	existing, err := s.catalogRepo.FindEntryByName(ctx, name)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return nil
	case err != nil:
		s.LogError(ctx, err, "Failed to check catalog name", slog.String("name", name))
		return err
	case existing.EntryID == selfID:
		return nil
	}
	return fmt.Errorf("catalog entry %q already exists with id %d: %w", name, existing.EntryID, apperrors.ErrDuplicate)
}

func applyMapping(sale *domain.Sale, m domain.SaleMapping) {
	sale.CatalogItemID = m.CatalogItemID
	sale.IsMapped = m.IsMapped
	sale.MatchedKeyword = m.MatchedKeyword
	sale.MappedAt = m.MappedAt
}

func defaultPriority(kind domain.RuleKind) int {
	switch kind {
	case domain.RuleIncludeAll:
		return domain.IncludeAllCatalogPriority
	case domain.RuleCatchAll:
		return domain.CatchAllCatalogPriority
	default:
		return domain.DefaultCatalogPriority
	}
}

func validateEntry(entry domain.CatalogEntry) error {
	if entry.Name == "" {
		return fmt.Errorf("catalog entry name is required: %w", apperrors.ErrValidation)
	}
	if !entry.RuleKind.IsValid() {
		return fmt.Errorf("unknown rule kind %q: %w", entry.RuleKind, apperrors.ErrValidation)
	}
	if entry.RuleKind != domain.RuleCatchAll && len(entry.EffectiveIncludeKeywords()) == 0 {
		return fmt.Errorf("%s entry %q needs at least one include keyword: %w", entry.RuleKind, entry.Name, apperrors.ErrValidation)
	}
	return nil
}
