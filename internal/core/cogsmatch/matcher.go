// Package cogsmatch assigns per-unit costs to item names from an immutable
// snapshot of COGS rules.
package cogsmatch

import (
	"sort"
	"strings"

	"github.com/kantocollect/salesops/internal/core/domain"
	"github.com/kantocollect/salesops/internal/utils/textnorm"
	"github.com/shopspring/decimal"
)

// Match is the outcome of a successful lookup.
type Match struct {
	RuleID   int64
	RuleName string
	UnitCost decimal.Decimal
	Keyword  string
}

type compiledRule struct {
	rule     domain.COGSRule
	keywords []string
}

// RuleSet is an ordered, read-only snapshot of the active rules.
// The zero value matches nothing.
type RuleSet struct {
	rules []compiledRule
}

// NewRuleSet drops inactive rules, orders the rest by priority descending
// with rule id ascending as the tie-break, and pre-normalizes keywords.
func NewRuleSet(rules []domain.COGSRule) RuleSet {
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		if !r.IsActive {
			continue
		}
		compiled = append(compiled, compiledRule{rule: r, keywords: textnorm.NormalizeAll(r.Keywords)})
	}
	sort.SliceStable(compiled, func(i, j int) bool {
		a, b := compiled[i].rule, compiled[j].rule
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		return a.RuleID < b.RuleID
	})
	return RuleSet{rules: compiled}
}

// Len returns the number of active rules in the snapshot.
func (s RuleSet) Len() int {
	return len(s.rules)
}

// Match returns the first keyword of the highest-ranked rule that matches
// normalizedName. The name must already be normalized.
func (s RuleSet) Match(normalizedName string) (Match, bool) {
	if normalizedName == "" {
		return Match{}, false
	}
	for _, cr := range s.rules {
		if kw, ok := matchKeywords(cr.rule.MatchMode, cr.keywords, normalizedName); ok {
			return Match{
				RuleID:   cr.rule.RuleID,
				RuleName: cr.rule.Name,
				UnitCost: cr.rule.UnitCost,
				Keyword:  kw,
			}, true
		}
	}
	return Match{}, false
}

// MatchName normalizes raw before matching.
func (s RuleSet) MatchName(raw string) (Match, bool) {
	return s.Match(textnorm.Normalize(raw))
}

// MatchRule evaluates a single rule against a normalized name, ignoring its
// active flag. Used for dry runs of rules that are not saved yet.
func MatchRule(rule domain.COGSRule, normalizedName string) (string, bool) {
	if normalizedName == "" {
		return "", false
	}
	return matchKeywords(rule.MatchMode, textnorm.NormalizeAll(rule.Keywords), normalizedName)
}

// ContainsAny reports the first normalized keyword that is a substring of
// normalizedName, regardless of any rule's configured mode.
func ContainsAny(keywords []string, normalizedName string) (string, bool) {
	return matchKeywords(domain.MatchContains, keywords, normalizedName)
}

func matchKeywords(mode domain.MatchMode, keywords []string, name string) (string, bool) {
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if matches(mode, kw, name) {
			return kw, true
		}
	}
	return "", false
}

func matches(mode domain.MatchMode, keyword, name string) bool {
	switch mode {
	case domain.MatchContains:
		return strings.Contains(name, keyword)
	case domain.MatchStartsWith:
		return strings.HasPrefix(name, keyword)
	case domain.MatchEndsWith:
		return strings.HasSuffix(name, keyword)
	case domain.MatchExact:
		return name == keyword
	default:
		return false
	}
}
