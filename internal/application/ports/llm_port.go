package ports

import (
	"context"

	"github.com/eb-pro/procurement-api/internal/application/dto"
	"github.com/eb-pro/procurement-api/internal/domain/entity"
)

// LLMService puerto de salida hacia el servicio generativo de texto.
// Cualquier adaptador (Gemini, mock) implementa este contrato; la capa de
// aplicación no conoce la implementación concreta. Los fallos del
// colaborador son SIEMPRE recuperables: el caso de uso los sustituye por un
// resumen mínimo local, nunca los propaga a la UI.
type LLMService interface {
	// AnalyzeProcurement analiza inventario y proveedores y devuelve el
	// resumen estructurado (summary + KPIs + recomendaciones) vía schema JSON.
	AnalyzeProcurement(ctx context.Context, items []entity.Item, suppliers []entity.Supplier) (*dto.AIAnalysisDTO, error)

	// ScoutSuppliers busca en la web fornitori alternativos (modo ITEM) o
	// competitors (modo SUPPLIER), con fuentes citadas por el grounding.
	ScoutSuppliers(ctx context.Context, req dto.ScoutingRequest) (*dto.ScoutingDTO, error)

	// GenerateEngagementContent redacta una email RFI/RFQ o el texto base de
	// un NDA para el candidato indicado.
	GenerateEngagementContent(ctx context.Context, req dto.EngagementRequest, companyName string) (string, error)
}
