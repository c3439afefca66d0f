package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eb-pro/procurement-api/internal/application/dto"
	"github.com/eb-pro/procurement-api/internal/application/usecase"
	"github.com/eb-pro/procurement-api/internal/domain/entity"
	"github.com/eb-pro/procurement-api/internal/domain/repository"
	"github.com/eb-pro/procurement-api/pkg/logger"
)

type fakeSupplierStore struct {
	suppliers []entity.Supplier
}

func (f *fakeSupplierStore) List(context.Context, repository.PageRequest) (repository.PageResult[entity.Supplier], error) {
	return repository.PageResult[entity.Supplier]{Data: f.suppliers, Total: len(f.suppliers)}, nil
}
func (f *fakeSupplierStore) Create(context.Context, *entity.Supplier) error { return nil }
func (f *fakeSupplierStore) Update(context.Context, *entity.Supplier) error { return nil }

// fakeLLM responde fijo o falla siempre.
type fakeLLM struct {
	analysis *dto.AIAnalysisDTO
	fail     bool
}

func (f *fakeLLM) AnalyzeProcurement(context.Context, []entity.Item, []entity.Supplier) (*dto.AIAnalysisDTO, error) {
	if f.fail {
		return nil, errors.New("quota esaurita")
	}
	return f.analysis, nil
}

func (f *fakeLLM) ScoutSuppliers(context.Context, dto.ScoutingRequest) (*dto.ScoutingDTO, error) {
	if f.fail {
		return nil, errors.New("quota esaurita")
	}
	return &dto.ScoutingDTO{AnalysisText: "## Candidati"}, nil
}

func (f *fakeLLM) GenerateEngagementContent(context.Context, dto.EngagementRequest, string) (string, error) {
	if f.fail {
		return "", errors.New("quota esaurita")
	}
	return "Gentile fornitore,", nil
}

func newAIUseCase(llm *fakeLLM, items []entity.Item, suppliers []entity.Supplier) *usecase.AIUseCase {
	return usecase.NewAIUseCase(
		llm,
		&fakeItemStore{items: items},
		&fakeSupplierStore{suppliers: suppliers},
		"EB-pro",
		logger.Nop(),
	)
}

func TestAnalyze_RespuestaDelModelo(t *testing.T) {
	want := &dto.AIAnalysisDTO{Summary: "Tutto sotto controllo"}
	uc := newAIUseCase(&fakeLLM{analysis: want}, buildInventory(6), nil)

	out, err := uc.Analyze(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Tutto sotto controllo", out.Summary)
	assert.False(t, out.Degraded)
}

func TestAnalyze_FalloDegradaAlResumenLocal(t *testing.T) {
	// 6 artículos, faltantes los índices 0 y 3
	items := buildInventory(6)
	suppliers := []entity.Supplier{{ID: "SUP-001"}, {ID: "SUP-002"}}

	uc := newAIUseCase(&fakeLLM{fail: true}, items, suppliers)

	out, err := uc.Analyze(context.Background())
	require.NoError(t, err, "el fallo de la IA nunca se propaga")

	assert.True(t, out.Degraded)
	assert.Contains(t, out.Summary, "non disponibile")
	require.Len(t, out.KPIs, 3)
	assert.Equal(t, "6", out.KPIs[0].Value)
	assert.Equal(t, "2", out.KPIs[1].Value)
	assert.Equal(t, "2", out.KPIs[2].Value) // faltantes calculados en local
	assert.NotEmpty(t, out.Recommendations)
}

func TestScout_FalloDevuelveCortesia(t *testing.T) {
	uc := newAIUseCase(&fakeLLM{fail: true}, nil, nil)

	out, err := uc.Scout(context.Background(), dto.ScoutingRequest{Mode: "ITEM", TargetName: "Valvola"})
	require.NoError(t, err)
	assert.Contains(t, out.AnalysisText, "non disponibile")
	assert.Empty(t, out.Sources)
}

func TestEngage_FalloDevuelvePlantilla(t *testing.T) {
	uc := newAIUseCase(&fakeLLM{fail: true}, nil, nil)

	out, err := uc.Engage(context.Background(), dto.EngagementRequest{
		Type: "RFI", CandidateName: "Rossi S.p.A.", ItemName: "Valvola a sfera",
	})
	require.NoError(t, err)
	assert.Contains(t, out.Content, "Rossi S.p.A.")
	assert.Contains(t, out.Content, "EB-pro")
}
