package service

import (
	"context"
	"fmt"

	"github.com/finwise-ai/finchat/internal/domain"
)

// CompanyStore is the document persistence the company service needs
type CompanyStore interface {
	Get(organization string) (*domain.CompanyInfo, error)
	Upsert(info *domain.CompanyInfo) error
}

// CompanyService serves the static organization knowledge base
type CompanyService struct {
	store        CompanyStore
	organization string
}

// NewCompanyService creates a new company service
func NewCompanyService(store CompanyStore, organization string) *CompanyService {
	return &CompanyService{store: store, organization: organization}
}

// Lookup resolves a category to its section, or to the full document for
// empty/"all" categories. "subscription" is an alias for "pricing". Fails
// with ErrNotConfigured when no document exists for the organization.
func (s *CompanyService) Lookup(ctx context.Context, category string) (any, error) {
	info, err := s.store.Get(s.organization)
	if err != nil {
		return nil, fmt.Errorf("company info lookup: %w", err)
	}
	if info == nil {
		return nil, domain.ErrNotConfigured
	}

	if category == "subscription" {
		category = domain.CompanySectionPricing
	}
	if category == "" || category == "all" {
		return info, nil
	}

	content, ok := info.Sections[category]
	if !ok {
		// Unknown category: hand the model the whole document and let the
		// narration sort it out.
		return info, nil
	}
	return map[string]string{
		"organization": info.Organization,
		"category":     category,
		"content":      content,
	}, nil
}

// Document returns the full company document
func (s *CompanyService) Document(ctx context.Context) (*domain.CompanyInfo, error) {
	info, err := s.store.Get(s.organization)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, domain.ErrNotConfigured
	}
	return info, nil
}

// Save stores the company document
func (s *CompanyService) Save(ctx context.Context, info *domain.CompanyInfo) error {
	return s.store.Upsert(info)
}
