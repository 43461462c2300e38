package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/finwise-ai/finchat/internal/domain"
)

type stubCompanyStore struct {
	info *domain.CompanyInfo
	err  error
}

func (s *stubCompanyStore) Get(string) (*domain.CompanyInfo, error) { return s.info, s.err }
func (s *stubCompanyStore) Upsert(info *domain.CompanyInfo) error {
	s.info = info
	return nil
}

func testDocument() *domain.CompanyInfo {
	return &domain.CompanyInfo{
		Organization: "FinWise",
		Sections: map[string]string{
			domain.CompanySectionFeatures: "Live quotes, charts, news.",
			domain.CompanySectionPricing:  "Basic plan $9/month.",
			domain.CompanySectionFAQ:      "Q: Is this advice? A: No.",
		},
	}
}

func TestLookup_SubscriptionAliasesPricing(t *testing.T) {
	s := NewCompanyService(&stubCompanyStore{info: testDocument()}, "FinWise")
	ctx := context.Background()

	pricing, err := s.Lookup(ctx, "pricing")
	if err != nil {
		t.Fatalf("pricing: %v", err)
	}
	subscription, err := s.Lookup(ctx, "subscription")
	if err != nil {
		t.Fatalf("subscription: %v", err)
	}
	if !reflect.DeepEqual(pricing, subscription) {
		t.Errorf("subscription and pricing must return identical data:\n%v\n%v", pricing, subscription)
	}
}

func TestLookup_SectionContent(t *testing.T) {
	s := NewCompanyService(&stubCompanyStore{info: testDocument()}, "FinWise")

	got, err := s.Lookup(context.Background(), "features")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	section, ok := got.(map[string]string)
	if !ok {
		t.Fatalf("expected section map, got %T", got)
	}
	if section["content"] != "Live quotes, charts, news." {
		t.Errorf("unexpected content %q", section["content"])
	}
}

func TestLookup_AllReturnsFullDocument(t *testing.T) {
	doc := testDocument()
	s := NewCompanyService(&stubCompanyStore{info: doc}, "FinWise")

	got, err := s.Lookup(context.Background(), "all")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != doc {
		t.Errorf("expected the full document, got %v", got)
	}
}

func TestLookup_UnknownCategoryFallsBackToDocument(t *testing.T) {
	doc := testDocument()
	s := NewCompanyService(&stubCompanyStore{info: doc}, "FinWise")

	got, err := s.Lookup(context.Background(), "careers")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != doc {
		t.Errorf("unknown category should fall back to the full document, got %v", got)
	}
}

func TestLookup_NotConfigured(t *testing.T) {
	s := NewCompanyService(&stubCompanyStore{}, "FinWise")

	_, err := s.Lookup(context.Background(), "pricing")
	if !errors.Is(err, domain.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
