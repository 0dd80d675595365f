package mapping

import (
	"github.com/kantocollect/salesops/internal/core/domain"
	"github.com/kantocollect/salesops/internal/models"
)

// ToModelCatalogEntry converts a domain CatalogEntry to a model CatalogEntry
func ToModelCatalogEntry(d domain.CatalogEntry) models.CatalogEntry {
	return models.CatalogEntry{
		EntryID:         d.EntryID,
		Name:            d.Name,
		Category:        d.Category,
		ImageURL:        d.ImageURL,
		ImageFilename:   d.ImageFilename,
		RuleKind:        string(d.RuleKind),
		IncludeKeywords: emptyIfNil(d.IncludeKeywords),
		ExcludeKeywords: emptyIfNil(d.ExcludeKeywords),
		Priority:        d.Priority,
		Keywords:        emptyIfNil(d.Keywords),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCatalogEntry converts a model CatalogEntry to a domain CatalogEntry
func ToDomainCatalogEntry(m models.CatalogEntry) domain.CatalogEntry {
	return domain.CatalogEntry{
		EntryID:         m.EntryID,
		Name:            m.Name,
		Category:        m.Category,
		ImageURL:        m.ImageURL,
		ImageFilename:   m.ImageFilename,
		RuleKind:        domain.RuleKind(m.RuleKind),
		IncludeKeywords: emptyIfNil(m.IncludeKeywords),
		ExcludeKeywords: emptyIfNil(m.ExcludeKeywords),
		Priority:        m.Priority,
		Keywords:        emptyIfNil(m.Keywords),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCatalogEntrySlice converts a slice of model entries to domain entries
func ToDomainCatalogEntrySlice(ms []models.CatalogEntry) []domain.CatalogEntry {
	ds := make([]domain.CatalogEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCatalogEntry(m)
	}
	return ds
}
