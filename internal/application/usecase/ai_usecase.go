package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/eb-pro/procurement-api/internal/application/dto"
	"github.com/eb-pro/procurement-api/internal/application/ports"
	"github.com/eb-pro/procurement-api/internal/domain/entity"
	"github.com/eb-pro/procurement-api/internal/domain/mrp"
	"github.com/eb-pro/procurement-api/internal/domain/repository"
	"github.com/eb-pro/procurement-api/pkg/logger"
)

const (
	// aiTimeout límite por llamada generativa; el scouting con búsqueda web
	// necesita más margen.
	aiTimeout      = 10 * time.Second
	aiScoutTimeout = 30 * time.Second
)

// AIUseCase orquesta al colaborador generativo. Contrato central: los fallos
// del colaborador nunca llegan a la UI como error; el análisis degrada al
// resumen mínimo calculado en local y el resto de operaciones devuelve un
// texto de cortesía en italiano.
type AIUseCase struct {
	llm       ports.LLMService
	items     repository.ItemStore
	suppliers repository.SupplierStore
	company   string
	log       *logger.Logger
}

// NewAIUseCase construye el caso de uso.
func NewAIUseCase(llm ports.LLMService, items repository.ItemStore, suppliers repository.SupplierStore, companyName string, log *logger.Logger) *AIUseCase {
	return &AIUseCase{llm: llm, items: items, suppliers: suppliers, company: companyName, log: log}
}

// Analyze genera el resumen estratégico de inventario y proveedores.
func (uc *AIUseCase) Analyze(ctx context.Context) (*dto.AIAnalysisDTO, error) {
	items, suppliers, err := uc.loadDataset(ctx)
	if err != nil {
		return nil, err
	}

	tctx, cancel := context.WithTimeout(ctx, aiTimeout)
	defer cancel()

	analysis, err := uc.llm.AnalyzeProcurement(tctx, items, suppliers)
	if err != nil {
		uc.log.Warn().Err(err).Msg("analisi AI non disponibile, uso il riepilogo locale")
		return localAnalysis(items, suppliers), nil
	}
	return analysis, nil
}

// Scout busca fornitori alternativos o competitors en la web.
func (uc *AIUseCase) Scout(ctx context.Context, req dto.ScoutingRequest) (*dto.ScoutingDTO, error) {
	tctx, cancel := context.WithTimeout(ctx, aiScoutTimeout)
	defer cancel()

	res, err := uc.llm.ScoutSuppliers(tctx, req)
	if err != nil {
		uc.log.Warn().Err(err).Str("mode", req.Mode).Msg("scouting AI non disponibile")
		return &dto.ScoutingDTO{
			AnalysisText: "Servizio di scouting non disponibile al momento. Riprova più tardi.",
			Sources:      []dto.ScoutingSourceDTO{},
		}, nil
	}
	return res, nil
}

// Engage redacta la email RFI/RFQ o el borrador de NDA para un candidato.
func (uc *AIUseCase) Engage(ctx context.Context, req dto.EngagementRequest) (*dto.EngagementDTO, error) {
	tctx, cancel := context.WithTimeout(ctx, aiTimeout)
	defer cancel()

	content, err := uc.llm.GenerateEngagementContent(tctx, req, uc.company)
	if err != nil {
		uc.log.Warn().Err(err).Str("type", req.Type).Msg("generazione contenuto non disponibile")
		return &dto.EngagementDTO{
			Content: fmt.Sprintf("Gentile %s,\n\nvi contattiamo in merito a \"%s\". Vi preghiamo di inviarci la documentazione pertinente.\n\nCordiali saluti,\nUfficio Acquisti %s", req.CandidateName, req.ItemName, uc.company),
		}, nil
	}
	return &dto.EngagementDTO{Content: content}, nil
}

func (uc *AIUseCase) loadDataset(ctx context.Context) ([]entity.Item, []entity.Supplier, error) {
	ires, err := uc.items.List(ctx, repository.PageRequest{Page: 1, PageSize: mrpFetchSize})
	if err != nil {
		return nil, nil, err
	}
	sres, err := uc.suppliers.List(ctx, repository.PageRequest{Page: 1, PageSize: mrpFetchSize})
	if err != nil {
		return nil, nil, err
	}
	return ires.Data, sres.Data, nil
}

// localAnalysis resumen mínimo determinista cuando la IA está caída: conteos
// y faltantes calculados con el mismo motor del planner.
func localAnalysis(items []entity.Item, suppliers []entity.Supplier) *dto.AIAnalysisDTO {
	shortages := 0
	for _, r := range mrp.Compute(items) {
		if r.IsShortage {
			shortages++
		}
	}
	return &dto.AIAnalysisDTO{
		Summary: "Servizio AI non disponibile. Visualizzazione calcoli base.",
		KPIs: []dto.AIKPIDTO{
			{Label: "Articoli a catalogo", Value: fmt.Sprintf("%d", len(items)), Trend: "neutral"},
			{Label: "Fornitori attivi", Value: fmt.Sprintf("%d", len(suppliers)), Trend: "neutral"},
			{Label: "Articoli sotto scorta", Value: fmt.Sprintf("%d", shortages), Trend: "down"},
		},
		Recommendations: []string{
			"Verificare gli articoli sotto scorta nel pannello MRP.",
			"Riprovare l'analisi AI più tardi.",
		},
		Degraded: true,
	}
}
