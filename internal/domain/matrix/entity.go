package matrix

// SkillDefinition is one recognized skill area from the catalog. Ordering by
// ID is the stability contract: matrix columns must not jitter between
// requests.
type SkillDefinition struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ShortKey    string `json:"short_key"`
	Description string `json:"description"`
}

// CompanyRow is one company's sparse raw proficiency values. Keys are skill
// column names as supplied by the staging source and may differ from catalog
// short keys in case, spacing, or punctuation. A nil value is a null cell.
type CompanyRow struct {
	ID          int64              `json:"id"`
	CompanyName string             `json:"company_name"`
	Levels      map[string]*string `json:"levels"`
}
