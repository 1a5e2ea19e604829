package dto

// SettingsRequest atualização das preferências da loja.
type SettingsRequest struct {
	CompanyName   string `json:"company_name"`
	WhatsAppPhone string `json:"whatsapp_phone"`
	Theme         string `json:"theme"`
}

// SettingsResponse preferências vigentes.
type SettingsResponse struct {
	CompanyName   string `json:"company_name"`
	WhatsAppPhone string `json:"whatsapp_phone"`
	Theme         string `json:"theme"`
}
