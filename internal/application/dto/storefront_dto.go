package dto

import "github.com/shopspring/decimal"

// StorefrontItemRequest linha do carrinho da vitrine pública.
type StorefrontItemRequest struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// StorefrontOrderRequest pedido finalizado na vitrine. Não cria venda:
// vira mensagem pré-preenchida de WhatsApp para o operador.
type StorefrontOrderRequest struct {
	CustomerName    string                  `json:"customer_name"`
	CustomerPhone   string                  `json:"customer_phone"`
	CustomerAddress string                  `json:"customer_address"`
	Notes           string                  `json:"notes"`
	Items           []StorefrontItemRequest `json:"items"`
}

// StorefrontOrderResponse mensagem composta + deep link de WhatsApp.
type StorefrontOrderResponse struct {
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
}
