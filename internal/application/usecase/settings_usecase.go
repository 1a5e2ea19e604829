package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestorloja/gestor-api/internal/application/dto"
	"github.com/gestorloja/gestor-api/internal/domain"
	"github.com/gestorloja/gestor-api/internal/domain/entity"
	"github.com/gestorloja/gestor-api/internal/domain/repository"
)

// SettingsUseCase expõe as preferências da loja (linha única).
// Os valores de fallback vêm da configuração de ambiente e são usados
// enquanto nenhuma preferência foi gravada.
type SettingsUseCase struct {
	settingsRepo       repository.SettingsRepository
	defaultCompanyName string
	defaultWhatsAppNum string
	defaultTheme       string
}

func NewSettingsUseCase(settingsRepo repository.SettingsRepository, companyName, whatsappPhone, theme string) *SettingsUseCase {
	return &SettingsUseCase{
		settingsRepo:       settingsRepo,
		defaultCompanyName: companyName,
		defaultWhatsAppNum: whatsappPhone,
		defaultTheme:       theme,
	}
}

// Get devolve as preferências vigentes ou os defaults do ambiente.
func (uc *SettingsUseCase) Get() (*dto.SettingsResponse, error) {
	s, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}
	if s == nil {
		return &dto.SettingsResponse{
			CompanyName:   uc.defaultCompanyName,
			WhatsAppPhone: uc.defaultWhatsAppNum,
			Theme:         uc.defaultTheme,
		}, nil
	}
	return &dto.SettingsResponse{
		CompanyName:   s.CompanyName,
		WhatsAppPhone: s.WhatsAppPhone,
		Theme:         s.Theme,
	}, nil
}

// Update grava as preferências. Campos vazios mantêm o valor anterior.
func (uc *SettingsUseCase) Update(in dto.SettingsRequest) (*dto.SettingsResponse, error) {
	if in.CompanyName == "" && in.WhatsAppPhone == "" && in.Theme == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Theme != "" && in.Theme != "light" && in.Theme != "dark" {
		return nil, domain.ErrInvalidInput
	}

	current, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}
	if current == nil {
		current = &entity.Settings{
			ID:            uuid.New().String(),
			CompanyName:   uc.defaultCompanyName,
			WhatsAppPhone: uc.defaultWhatsAppNum,
			Theme:         uc.defaultTheme,
		}
	}
	if in.CompanyName != "" {
		current.CompanyName = in.CompanyName
	}
	if in.WhatsAppPhone != "" {
		current.WhatsAppPhone = in.WhatsAppPhone
	}
	if in.Theme != "" {
		current.Theme = in.Theme
	}
	current.UpdatedAt = time.Now()

	if err := uc.settingsRepo.Upsert(current); err != nil {
		return nil, err
	}
	return &dto.SettingsResponse{
		CompanyName:   current.CompanyName,
		WhatsAppPhone: current.WhatsAppPhone,
		Theme:         current.Theme,
	}, nil
}
