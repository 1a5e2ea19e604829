package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestorloja/gestor-api/internal/domain/entity"
	"github.com/gestorloja/gestor-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementação do porto SettingsRepository sobre PostgreSQL.
// A tabela guarda uma única linha, identificada por singleton = true.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository constrói o adaptador das preferências da loja.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get obtém as preferências gravadas; nil se nunca foram salvas.
func (r *SettingsRepo) Get() (*entity.Settings, error) {
	query := `SELECT id, company_name, whatsapp_phone, theme, updated_at FROM settings WHERE singleton = true`
	var s entity.Settings
	err := r.q.QueryRow(context.Background(), query).Scan(
		&s.ID, &s.CompanyName, &s.WhatsAppPhone, &s.Theme, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Upsert grava a linha única de preferências.
func (r *SettingsRepo) Upsert(settings *entity.Settings) error {
	query := `
		INSERT INTO settings (id, singleton, company_name, whatsapp_phone, theme, updated_at)
		VALUES ($1, true, $2, $3, $4, $5)
		ON CONFLICT (singleton) DO UPDATE
		SET company_name = EXCLUDED.company_name,
		    whatsapp_phone = EXCLUDED.whatsapp_phone,
		    theme = EXCLUDED.theme,
		    updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		settings.ID, settings.CompanyName, settings.WhatsAppPhone,
		settings.Theme, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
