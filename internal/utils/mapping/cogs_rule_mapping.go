package mapping

import (
	"github.com/kantocollect/salesops/internal/core/domain"
	"github.com/kantocollect/salesops/internal/models"
)

// ToModelCOGSRule converts a domain COGSRule to a model COGSRule
func ToModelCOGSRule(d domain.COGSRule) models.COGSRule {
	return models.COGSRule{
		RuleID:    d.RuleID,
		Name:      d.Name,
		Keywords:  emptyIfNil(d.Keywords),
		UnitCost:  d.UnitCost,
		MatchMode: string(d.MatchMode),
		Priority:  d.Priority,
		IsActive:  d.IsActive,
		Category:  nullString(d.Category),
		Notes:     nullString(d.Notes),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ToDomainCOGSRule converts a model COGSRule to a domain COGSRule
func ToDomainCOGSRule(m models.COGSRule) domain.COGSRule {
	return domain.COGSRule{
		RuleID:    m.RuleID,
		Name:      m.Name,
		Keywords:  emptyIfNil(m.Keywords),
		UnitCost:  m.UnitCost,
		MatchMode: domain.MatchMode(m.MatchMode),
		Priority:  m.Priority,
		IsActive:  m.IsActive,
		Category:  stringPtr(m.Category),
		Notes:     stringPtr(m.Notes),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToDomainCOGSRuleSlice converts a slice of model rules to domain rules
func ToDomainCOGSRuleSlice(ms []models.COGSRule) []domain.COGSRule {
	ds := make([]domain.COGSRule, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCOGSRule(m)
	}
	return ds
}
