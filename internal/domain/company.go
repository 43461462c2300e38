package domain

import "time"

// Company info section names
const (
	CompanySectionFeatures = "features"
	CompanySectionPricing  = "pricing"
	CompanySectionBenefits = "benefits"
	CompanySectionSupport  = "support"
	CompanySectionFAQ      = "faq"
)

// CompanyInfo is the static organization document served to company-info
// questions. Sections are keyed by the names above.
type CompanyInfo struct {
	Organization string            `json:"organization"`
	Sections     map[string]string `json:"sections"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// UpsertCompanyInfoRequest is the admin request to store the document
type UpsertCompanyInfoRequest struct {
	Organization string            `json:"organization" binding:"required"`
	Sections     map[string]string `json:"sections" binding:"required"`
}
