package dto

import "encoding/json"

// CompanyShortResponse is the pre-rendered card payload for the company list.
type CompanyShortResponse struct {
	CompanyID int64           `json:"company_id"`
	Short     json.RawMessage `json:"short"`
}

// CompanyFullResponse is the detail-page payload for a single company.
type CompanyFullResponse struct {
	CompanyID int64           `json:"company_id"`
	Full      json.RawMessage `json:"full"`
}

// CompanySearchResponse is one navbar autocomplete suggestion.
type CompanySearchResponse struct {
	CompanyID int64  `json:"company_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	LogoURL   string `json:"logo_url"`
	Tier      string `json:"tier"`
}
