package repository

import (
	"path/filepath"
	"testing"

	"github.com/finwise-ai/finchat/internal/domain"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "finchat.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCompanyRepository_GetMissing(t *testing.T) {
	repo := NewCompanyRepository(newTestDB(t))

	info, err := repo.Get("FinWise")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info != nil {
		t.Errorf("expected nil for missing document, got %+v", info)
	}
}

func TestCompanyRepository_UpsertAndGet(t *testing.T) {
	repo := NewCompanyRepository(newTestDB(t))

	err := repo.Upsert(&domain.CompanyInfo{
		Organization: "FinWise",
		Sections: map[string]string{
			domain.CompanySectionPricing: "Basic $9",
		},
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	info, err := repo.Get("FinWise")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if info == nil || info.Sections[domain.CompanySectionPricing] != "Basic $9" {
		t.Fatalf("unexpected document: %+v", info)
	}

	// Replacing the document overwrites sections
	err = repo.Upsert(&domain.CompanyInfo{
		Organization: "FinWise",
		Sections: map[string]string{
			domain.CompanySectionPricing: "Basic $12",
		},
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	info, err = repo.Get("FinWise")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if info.Sections[domain.CompanySectionPricing] != "Basic $12" {
		t.Errorf("expected updated pricing, got %q", info.Sections[domain.CompanySectionPricing])
	}
}
