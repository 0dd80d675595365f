package services_test

import (
	"github.com/kantocollect/salesops/internal/core/domain"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func int64Ptr(v int64) *int64 { return &v }

func strPtr(v string) *string { return &v }

// streamSale builds a sale attached to a show.
func streamSale(id, showID int64, name string, qty int, net string) domain.Sale {
	return domain.Sale{
		SaleID:         id,
		ShowID:         int64Ptr(showID),
		SaleType:       domain.SaleTypeStream,
		ItemName:       name,
		Quantity:       qty,
		GrossSalePrice: dec(net),
		NetEarnings:    dec(net),
	}
}

func rule(id int64, name string, priority int, cost string, keywords ...string) domain.COGSRule {
	return domain.COGSRule{
		RuleID:    id,
		Name:      name,
		Keywords:  keywords,
		UnitCost:  dec(cost),
		MatchMode: domain.MatchContains,
		Priority:  priority,
		IsActive:  true,
	}
}

func catalogEntry(id int64, name string, kind domain.RuleKind, priority int, include ...string) domain.CatalogEntry {
	return domain.CatalogEntry{
		EntryID:         id,
		Name:            name,
		Category:        "Other",
		RuleKind:        kind,
		IncludeKeywords: include,
		Priority:        priority,
	}
}
