// Package catalogmatch groups free-text item names under curated catalog
// entries. It shares only the text normalizer with the COGS matcher.
package catalogmatch

import (
	"sort"
	"strings"

	"github.com/kantocollect/salesops/internal/core/domain"
	"github.com/kantocollect/salesops/internal/utils/textnorm"
	"github.com/shopspring/decimal"
)

// Source says how a sale was resolved to an entry.
type Source string

const (
	SourceManual   Source = "manual"
	SourceKeyword  Source = "keyword"
	SourceCatchAll Source = "catch_all"
)

// Resolution is the entry a sale belongs to in the catalog view.
type Resolution struct {
	EntryID int64
	Keyword string
	Source  Source
}

type compiledEntry struct {
	entry   domain.CatalogEntry
	include []string
	exclude []string
}

// Catalog is an ordered, read-only snapshot of catalog entries.
type Catalog struct {
	entries  []compiledEntry
	byID     map[int64]int
	catchAll *compiledEntry
	// IgnoredCatchAll holds ids of catch-all entries shadowed by the first one.
	IgnoredCatchAll []int64
}

// NewCatalog orders entries by priority descending then id ascending and
// picks the first catch-all entry in that order as the fallback.
func NewCatalog(entries []domain.CatalogEntry) *Catalog {
	compiled := make([]compiledEntry, 0, len(entries))
	for _, e := range entries {
		compiled = append(compiled, compiledEntry{
			entry:   e,
			include: textnorm.FoldAll(e.EffectiveIncludeKeywords()),
			exclude: textnorm.FoldAll(e.ExcludeKeywords),
		})
	}
	sort.SliceStable(compiled, func(i, j int) bool {
		a, b := compiled[i].entry, compiled[j].entry
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		return a.EntryID < b.EntryID
	})

	c := &Catalog{entries: compiled, byID: make(map[int64]int, len(compiled))}
	for i := range c.entries {
		ce := &c.entries[i]
		c.byID[ce.entry.EntryID] = i
		if ce.entry.RuleKind != domain.RuleCatchAll {
			continue
		}
		if c.catchAll == nil {
			c.catchAll = ce
		} else {
			c.IgnoredCatchAll = append(c.IgnoredCatchAll, ce.entry.EntryID)
		}
	}
	return c
}

// Entries returns the snapshot in evaluation order.
func (c *Catalog) Entries() []domain.CatalogEntry {
	out := make([]domain.CatalogEntry, len(c.entries))
	for i, ce := range c.entries {
		out[i] = ce.entry
	}
	return out
}

// MatchKeywords runs the keyword pass only. Catch-all entries are skipped.
func (c *Catalog) MatchKeywords(itemName string) (Resolution, bool) {
	folded := textnorm.Fold(itemName)
	for i := range c.entries {
		ce := &c.entries[i]
		if kw, ok := ce.match(folded); ok {
			return Resolution{EntryID: ce.entry.EntryID, Keyword: kw, Source: SourceKeyword}, true
		}
	}
	return Resolution{}, false
}

// Match runs the keyword pass and falls back to the catch-all entry.
func (c *Catalog) Match(itemName string) (Resolution, bool) {
	if r, ok := c.MatchKeywords(itemName); ok {
		return r, true
	}
	if c.catchAll != nil {
		return Resolution{EntryID: c.catchAll.entry.EntryID, Source: SourceCatchAll}, true
	}
	return Resolution{}, false
}

// Resolve gives a manual mapping to an entry still present in the snapshot
// precedence over keyword matching.
func (c *Catalog) Resolve(sale domain.Sale) (Resolution, bool) {
	if id, ok := ManualEntryID(sale); ok {
		if _, exists := c.byID[id]; exists {
			return Resolution{EntryID: id, Keyword: domain.ManualKeyword, Source: SourceManual}, true
		}
	}
	return c.Match(sale.ItemName)
}

// ManualEntryID returns the persisted catalog id of a mapped sale.
func ManualEntryID(sale domain.Sale) (int64, bool) {
	if !sale.IsMapped || sale.CatalogItemID == nil {
		return 0, false
	}
	return *sale.CatalogItemID, true
}

// Rollup counts sales and sums gross revenue per entry. Every entry of the
// snapshot appears in the result, in evaluation order.
func (c *Catalog) Rollup(sales []domain.Sale) domain.CatalogRollupReport {
	rows := make([]domain.CatalogRollup, len(c.entries))
	for i, ce := range c.entries {
		rows[i] = domain.CatalogRollup{Entry: ce.entry, TotalRevenue: decimal.Zero}
	}
	report := domain.CatalogRollupReport{UnresolvedRevenue: decimal.Zero}
	for _, s := range sales {
		res, ok := c.Resolve(s)
		if !ok {
			report.UnresolvedCount++
			report.UnresolvedRevenue = report.UnresolvedRevenue.Add(s.GrossSalePrice)
			continue
		}
		row := &rows[c.byID[res.EntryID]]
		row.SalesCount++
		row.TotalRevenue = row.TotalRevenue.Add(s.GrossSalePrice)
		if res.Source == SourceManual {
			row.ManualCount++
		}
	}
	report.Entries = rows
	return report
}

// UnmappedSingles returns the sales that no specific entry of the generic
// entry's category claims but the generic entry named genericName does.
// Manually mapped sales are never included.
func (c *Catalog) UnmappedSingles(sales []domain.Sale, genericName string) (domain.CatalogEntry, []domain.Sale, bool) {
	var generic *compiledEntry
	for i := range c.entries {
		if strings.EqualFold(c.entries[i].entry.Name, genericName) {
			generic = &c.entries[i]
			break
		}
	}
	if generic == nil {
		return domain.CatalogEntry{}, nil, false
	}

	var specific []*compiledEntry
	for i := range c.entries {
		ce := &c.entries[i]
		if ce == generic || ce.entry.RuleKind == domain.RuleCatchAll {
			continue
		}
		if strings.EqualFold(ce.entry.Category, generic.entry.Category) {
			specific = append(specific, ce)
		}
	}

	out := make([]domain.Sale, 0)
	for _, s := range sales {
		if _, manual := ManualEntryID(s); manual {
			continue
		}
		folded := textnorm.Fold(s.ItemName)
		claimed := false
		for _, ce := range specific {
			if _, ok := ce.match(folded); ok {
				claimed = true
				break
			}
		}
		if claimed {
			continue
		}
		if _, ok := generic.matchGeneric(folded); ok {
			out = append(out, s)
		}
	}
	return generic.entry, out, true
}

func (ce *compiledEntry) match(folded string) (string, bool) {
	switch ce.entry.RuleKind {
	case domain.RuleIncludeAny:
		return containsAny(folded, ce.include)
	case domain.RuleIncludeAll:
		if len(ce.include) == 0 {
			return "", false
		}
		for _, kw := range ce.include {
			if !strings.Contains(folded, kw) {
				return "", false
			}
		}
		return ce.include[0], true
	case domain.RuleIncludeAndExclude:
		kw, ok := containsAny(folded, ce.include)
		if !ok {
			return "", false
		}
		if _, excluded := containsAny(folded, ce.exclude); excluded {
			return "", false
		}
		return kw, true
	default:
		return "", false
	}
}

// matchGeneric treats a catch-all generic bucket as matching everything.
func (ce *compiledEntry) matchGeneric(folded string) (string, bool) {
	if ce.entry.RuleKind == domain.RuleCatchAll {
		return "", true
	}
	return ce.match(folded)
}

func containsAny(folded string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if strings.Contains(folded, kw) {
			return kw, true
		}
	}
	return "", false
}
