package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/eb-pro/procurement-api/internal/application/dto"
	"github.com/eb-pro/procurement-api/internal/application/ports"
	"github.com/eb-pro/procurement-api/internal/domain"
	"github.com/eb-pro/procurement-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que GeminiService implementa LLMService.
var _ ports.LLMService = (*GeminiService)(nil)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

	// analysisSystemPrompt fija el rol del modelo para el análisis. El esquema
	// de salida va aparte en generationConfig.responseSchema, así el JSON
	// llega tipado sin limpiar bloques markdown.
	analysisSystemPrompt = `Sei un direttore acquisti esperto di un'azienda manifatturiera italiana.
Analizza l'inventario e il parco fornitori forniti e produci in italiano:
- un riepilogo strategico conciso (massimo 3 frasi),
- 3 o 4 KPI rilevanti (etichetta breve, valore, trend up/down/neutral),
- 2 o 3 raccomandazioni operative concrete.
Concentrati su rotture di stock, concentrazione della spesa e affidabilità dei fornitori.`

	// scoutSystemPrompt guía el scouting con búsqueda web: salida en Markdown,
	// las fuentes las aporta el groundingMetadata.
	scoutSystemPrompt = `Sei un buyer strategico. Usa la ricerca web per trovare aziende reali
e rispondi in italiano con Markdown: per ogni candidato nome, punti di forza,
eventuale fascia di prezzo e perché è rilevante. Massimo 5 candidati.`
)

// GeminiService adaptador que implementa LLMService llamando a la API REST de
// Google Gemini. Usa únicamente net/http para no añadir dependencias externas.
// model sirve para el análisis estructurado; scoutModel para las llamadas con
// la herramienta de búsqueda web.
type GeminiService struct {
	apiKey     string
	model      string
	scoutModel string
	baseURL    string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. Si apiKey está vacío, las llamadas
// devuelven error y el caso de uso degrada al resumen local.
func NewGeminiService(apiKey, model, scoutModel string) *GeminiService {
	return &GeminiService{
		apiKey:     apiKey,
		model:      model,
		scoutModel: scoutModel,
		baseURL:    geminiBaseURL,
		httpClient: &http.Client{
			Timeout: 40 * time.Second, // timeout de red; el caller también pone WithTimeout
		},
	}
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	Tools             []geminiTool    `json:"tools,omitempty"`
	GenerationConfig  *genConfig      `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiTool struct {
	GoogleSearch *struct{} `json:"google_search,omitempty"`
}

type genConfig struct {
	ResponseMIMEType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   json.RawMessage `json:"responseSchema,omitempty"`
	Temperature      float32         `json:"temperature"`
	MaxOutputTokens  int             `json:"maxOutputTokens,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content           geminiContent `json:"content"`
		GroundingMetadata *struct {
			GroundingChunks []struct {
				Web *struct {
					URI   string `json:"uri"`
					Title string `json:"title"`
				} `json:"web"`
			} `json:"groundingChunks"`
		} `json:"groundingMetadata"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// analysisSchema describe la salida tipada del análisis (formato OpenAPI de
// responseSchema de Gemini).
var analysisSchema = json.RawMessage(`{
  "type": "OBJECT",
  "properties": {
    "summary": {"type": "STRING"},
    "kpis": {
      "type": "ARRAY",
      "items": {
        "type": "OBJECT",
        "properties": {
          "label": {"type": "STRING"},
          "value": {"type": "STRING"},
          "trend": {"type": "STRING", "enum": ["up", "down", "neutral"]}
        },
        "required": ["label", "value", "trend"]
      }
    },
    "recommendations": {"type": "ARRAY", "items": {"type": "STRING"}}
  },
  "required": ["summary", "kpis", "recommendations"]
}`)

// llmAnalysisPayload es el JSON que esperamos recibir del modelo.
type llmAnalysisPayload struct {
	Summary string `json:"summary"`
	KPIs    []struct {
		Label string `json:"label"`
		Value string `json:"value"`
		Trend string `json:"trend"`
	} `json:"kpis"`
	Recommendations []string `json:"recommendations"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// AnalyzeProcurement llama a Gemini con el dataset compacto de inventario y
// proveedores y devuelve el análisis estructurado.
func (s *GeminiService) AnalyzeProcurement(ctx context.Context, items []entity.Item, suppliers []entity.Supplier) (*dto.AIAnalysisDTO, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY non configurata", domain.ErrAIGeneration)
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: analysisSystemPrompt}}},
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: datasetPrompt(items, suppliers)}},
		}},
		GenerationConfig: &genConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   analysisSchema,
			Temperature:      0.2, // baja temperatura para salida estable
			MaxOutputTokens:  1024,
		},
	}

	resp, err := s.call(ctx, s.model, payload)
	if err != nil {
		return nil, err
	}

	rawJSON := strings.TrimSpace(firstText(resp))
	var analysis llmAnalysisPayload
	if err := json.Unmarshal([]byte(rawJSON), &analysis); err != nil {
		return nil, fmt.Errorf("%w: la risposta del modello non è JSON valido: %v", domain.ErrAIGeneration, err)
	}

	out := &dto.AIAnalysisDTO{
		Summary:         analysis.Summary,
		KPIs:            make([]dto.AIKPIDTO, 0, len(analysis.KPIs)),
		Recommendations: analysis.Recommendations,
	}
	for _, k := range analysis.KPIs {
		trend := k.Trend
		switch trend {
		case "up", "down", "neutral":
		default:
			trend = "neutral"
		}
		out.KPIs = append(out.KPIs, dto.AIKPIDTO{Label: k.Label, Value: k.Value, Trend: trend})
	}
	return out, nil
}

// ScoutSuppliers ejecuta la búsqueda con grounding web y devuelve el análisis
// en Markdown más las fuentes citadas, deduplicadas por URI.
func (s *GeminiService) ScoutSuppliers(ctx context.Context, req dto.ScoutingRequest) (*dto.ScoutingDTO, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY non configurata", domain.ErrAIGeneration)
	}

	var prompt string
	switch req.Mode {
	case "SUPPLIER":
		prompt = fmt.Sprintf(
			"Trova competitor diretti del fornitore %q (rating attuale: %s) nel mercato italiano ed europeo per forniture industriali.",
			req.TargetName, req.Rating)
	default: // ITEM
		prompt = fmt.Sprintf(
			"Trova fornitori alternativi per l'articolo %q (categoria: %s, costo attuale: %s, fornitore attuale: %s) in Italia o UE.",
			req.TargetName, req.Category, req.CurrentCost, req.ContextName)
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: scoutSystemPrompt}}},
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: prompt}},
		}},
		Tools: []geminiTool{{GoogleSearch: &struct{}{}}},
	}

	resp, err := s.call(ctx, s.scoutModel, payload)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(firstText(resp))
	if text == "" {
		return nil, fmt.Errorf("%w: risposta vuota dal modello", domain.ErrAIGeneration)
	}

	out := &dto.ScoutingDTO{AnalysisText: text, Sources: []dto.ScoutingSourceDTO{}}
	if meta := resp.Candidates[0].GroundingMetadata; meta != nil {
		seen := make(map[string]bool)
		for _, chunk := range meta.GroundingChunks {
			if chunk.Web == nil || chunk.Web.URI == "" || seen[chunk.Web.URI] {
				continue
			}
			seen[chunk.Web.URI] = true
			out.Sources = append(out.Sources, dto.ScoutingSourceDTO{Title: chunk.Web.Title, URI: chunk.Web.URI})
		}
	}
	return out, nil
}

// GenerateEngagementContent redacta la email RFI/RFQ o el borrador de NDA.
func (s *GeminiService) GenerateEngagementContent(ctx context.Context, req dto.EngagementRequest, companyName string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("%w: GEMINI_API_KEY non configurata", domain.ErrAIGeneration)
	}

	var prompt string
	switch req.Type {
	case "NDA":
		prompt = fmt.Sprintf(
			"Redigi in italiano una bozza sintetica di accordo di riservatezza (NDA) bilaterale tra %s e %s, relativo alla fornitura di %q. Linguaggio legale ma asciutto, massimo 400 parole. Non è un documento vincolante: segnalalo in coda.",
			companyName, req.CandidateName, req.ItemName)
	case "RFQ":
		prompt = fmt.Sprintf(
			"Scrivi in italiano una email formale di richiesta di quotazione (RFQ) da %s a %s per l'articolo %q: quantità indicative, richiesta di listino, tempi di consegna e condizioni di pagamento. Tono professionale, pronta da inviare.",
			companyName, req.CandidateName, req.ItemName)
	default: // RFI
		prompt = fmt.Sprintf(
			"Scrivi in italiano una email di primo contatto (RFI) da %s a %s: presentazione dell'azienda, interesse per %q, richiesta di catalogo e certificazioni. Tono professionale e cordiale.",
			companyName, req.CandidateName, req.ItemName)
	}

	payload := geminiRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: prompt}},
		}},
		GenerationConfig: &genConfig{Temperature: 0.6, MaxOutputTokens: 1024},
	}

	resp, err := s.call(ctx, s.model, payload)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(firstText(resp))
	if text == "" {
		return "", fmt.Errorf("%w: risposta vuota dal modello", domain.ErrAIGeneration)
	}
	return text, nil
}

// ── Transporte ────────────────────────────────────────────────────────────────

func (s *GeminiService) call(ctx context.Context, model string, payload geminiRequest) (*geminiResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: serializzazione request: %v", domain.ErrAIGeneration, err)
	}

	url := fmt.Sprintf(s.baseURL, model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: creazione request: %v", domain.ErrAIGeneration, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: timeout o annullamento: %v", domain.ErrAIGeneration, ctx.Err())
		}
		return nil, fmt.Errorf("%w: chiamata HTTP fallita: %v", domain.ErrAIGeneration, err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 512*1024))
	if err != nil {
		return nil, fmt.Errorf("%w: lettura risposta: %v", domain.ErrAIGeneration, err)
	}

	var gemResp geminiResponse
	if resp.StatusCode != http.StatusOK {
		if jsonErr := json.Unmarshal(rawBody, &gemResp); jsonErr == nil && gemResp.Error != nil {
			return nil, fmt.Errorf("%w: Gemini %d: %s", domain.ErrAIGeneration, gemResp.Error.Code, gemResp.Error.Message)
		}
		return nil, fmt.Errorf("%w: Gemini HTTP %d", domain.ErrAIGeneration, resp.StatusCode)
	}
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return nil, fmt.Errorf("%w: deserializzazione risposta: %v", domain.ErrAIGeneration, err)
	}
	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: risposta vuota dal modello", domain.ErrAIGeneration)
	}
	return &gemResp, nil
}

func firstText(resp *geminiResponse) string {
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

// datasetPrompt serializa el dataset en líneas compactas para caber en el
// contexto del modelo sin JSON anidado.
func datasetPrompt(items []entity.Item, suppliers []entity.Supplier) string {
	var b strings.Builder
	b.WriteString("INVENTARIO (sku | nome | categoria | stock | scorta minima | costo | fornitore | lead time gg):\n")
	for _, it := range items {
		fmt.Fprintf(&b, "%s | %s | %s | %d | %d | %s | %s | %d\n",
			it.SKU, it.Name, it.Category, it.Stock, it.SafetyStock, it.Cost.String(), it.SupplierID, it.LeadTimeDays)
	}
	b.WriteString("\nFORNITORI (id | nome | rating | termini di pagamento):\n")
	for _, sp := range suppliers {
		fmt.Fprintf(&b, "%s | %s | %s | %s\n", sp.ID, sp.Name, sp.Rating.String(), sp.PaymentTerms)
	}
	return b.String()
}
