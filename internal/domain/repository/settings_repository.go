package repository

import "github.com/gestorloja/gestor-api/internal/domain/entity"

// SettingsRepository define a porta das preferências persistidas da loja.
// Linha única: Get devolve nil se nunca foi gravada.
type SettingsRepository interface {
	Get() (*entity.Settings, error)
	Upsert(settings *entity.Settings) error
}
