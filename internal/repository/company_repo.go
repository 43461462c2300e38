package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/finwise-ai/finchat/internal/domain"
)

// CompanyRepository handles company-info persistence
type CompanyRepository struct {
	db *DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Get retrieves the company document by organization name. Returns nil when
// no document exists.
func (r *CompanyRepository) Get(organization string) (*domain.CompanyInfo, error) {
	info := &domain.CompanyInfo{}
	var sectionsJSON string

	err := r.db.QueryRow(`
		SELECT organization, sections, updated_at
		FROM company_info WHERE organization = ?
	`, organization).Scan(&info.Organization, &sectionsJSON, &info.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(sectionsJSON), &info.Sections); err != nil {
		return nil, err
	}
	return info, nil
}

// Upsert stores the company document, replacing any existing one
func (r *CompanyRepository) Upsert(info *domain.CompanyInfo) error {
	info.UpdatedAt = time.Now()
	sectionsJSON, err := json.Marshal(info.Sections)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(`
		INSERT INTO company_info (organization, sections, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(organization) DO UPDATE SET
			sections = excluded.sections,
			updated_at = excluded.updated_at
	`, info.Organization, string(sectionsJSON), info.UpdatedAt)

	return err
}
