package dto

import (
	"placement-intel/internal/domain/insight"
	"placement-intel/internal/domain/matrix"
)

// SkillAnalyticsResponse is the analytics page payload. Insights is present
// only when the request selected a company roster.
type SkillAnalyticsResponse struct {
	Matrix   matrix.Matrix       `json:"matrix"`
	Stats    []insight.SkillStat `json:"stats"`
	Insights *insight.Insights   `json:"insights,omitempty"`
}
