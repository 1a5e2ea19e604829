package sales

import (
	"context"

	"github.com/gestorloja/gestor-api/internal/application/dto"
	"github.com/gestorloja/gestor-api/internal/domain"
	"github.com/gestorloja/gestor-api/internal/domain/entity"
	"github.com/gestorloja/gestor-api/internal/domain/repository"
)

// InvoicePDFData agrupa tudo que a representação gráfica da nota precisa.
type InvoicePDFData struct {
	Invoice      *entity.Invoice
	Sale         *entity.Sale
	Client       *entity.Client
	Items        []*entity.SaleItem
	Installments []*entity.Installment
	CompanyName  string
}

// InvoicePDFGenerator porta de saída para o gerador de PDF da nota.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, data InvoicePDFData) ([]byte, error)
}

// InvoiceUseCase consulta notas fiscais e gera a representação em PDF.
type InvoiceUseCase struct {
	invoiceRepo     repository.InvoiceRepository
	saleRepo        repository.SaleRepository
	clientRepo      repository.ClientRepository
	installmentRepo repository.InstallmentRepository
	pdfGen          InvoicePDFGenerator
	companyName     string
}

// NewInvoiceUseCase constrói o caso de uso.
func NewInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	saleRepo repository.SaleRepository,
	clientRepo repository.ClientRepository,
	installmentRepo repository.InstallmentRepository,
	pdfGen InvoicePDFGenerator,
	companyName string,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoiceRepo:     invoiceRepo,
		saleRepo:        saleRepo,
		clientRepo:      clientRepo,
		installmentRepo: installmentRepo,
		pdfGen:          pdfGen,
		companyName:     companyName,
	}
}

// GetBySale devolve a nota da venda (relação 1:1).
func (uc *InvoiceUseCase) GetBySale(saleID string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetBySaleID(saleID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return toInvoiceResponse(inv), nil
}

// List lista notas paginadas.
func (uc *InvoiceUseCase) List(limit, offset int) ([]dto.InvoiceResponse, error) {
	invoices, err := uc.invoiceRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, *toInvoiceResponse(inv))
	}
	return out, nil
}

// GeneratePDF monta os dados da nota de uma venda e gera o PDF.
func (uc *InvoiceUseCase) GeneratePDF(ctx context.Context, saleID string) ([]byte, string, error) {
	inv, err := uc.invoiceRepo.GetBySaleID(saleID)
	if err != nil {
		return nil, "", err
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil || sale == nil {
		return nil, "", domain.ErrNotFound
	}
	client, err := uc.clientRepo.GetByID(sale.ClientID)
	if err != nil {
		return nil, "", err
	}
	items, err := uc.saleRepo.GetItemsBySaleID(saleID)
	if err != nil {
		return nil, "", err
	}
	installments, err := uc.installmentRepo.ListBySale(saleID)
	if err != nil {
		return nil, "", err
	}

	pdf, err := uc.pdfGen.GenerateInvoicePDF(ctx, InvoicePDFData{
		Invoice:      inv,
		Sale:         sale,
		Client:       client,
		Items:        items,
		Installments: installments,
		CompanyName:  uc.companyName,
	})
	if err != nil {
		return nil, "", err
	}
	return pdf, inv.Number, nil
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:        inv.ID,
		SaleID:    inv.SaleID,
		Number:    inv.Number,
		Status:    inv.Status,
		CreatedAt: inv.CreatedAt,
	}
}
