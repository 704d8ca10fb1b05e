package dto

import "encoding/json"

// HiringRoundsResponse carries one company's hiring round document.
type HiringRoundsResponse struct {
	CompanyID   int64           `json:"company_id"`
	CompanyName string          `json:"company_name"`
	JobRoles    json.RawMessage `json:"job_roles"`
}

// InnovationProjectsResponse carries one company's innovation document.
type InnovationProjectsResponse struct {
	CompanyID   int64           `json:"company_id"`
	CompanyName string          `json:"company_name"`
	Projects    json.RawMessage `json:"projects"`
}
