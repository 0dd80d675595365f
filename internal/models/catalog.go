package models

// CatalogEntry is the product_catalog row.
type CatalogEntry struct {
	EntryID         int64
	Name            string
	Category        string
	ImageURL        string
	ImageFilename   string
	RuleKind        string
	IncludeKeywords []string
	ExcludeKeywords []string
	Priority        int
	Keywords        []string
	AuditFields
}
