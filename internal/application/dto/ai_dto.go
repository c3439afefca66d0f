package dto

// ── Análisis de aprovisionamiento ─────────────────────────────────────────────

// AIKPIDTO indicador de performance generado por el análisis.
type AIKPIDTO struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Trend string `json:"trend"` // up | down | neutral
}

// AIAnalysisDTO respuesta estructurada del análisis de inventario/proveedores.
// Degraded marca que el contenido es el resumen mínimo local (IA caída).
type AIAnalysisDTO struct {
	Summary         string     `json:"summary"`
	KPIs            []AIKPIDTO `json:"kpis"`
	Recommendations []string   `json:"recommendations"`
	Degraded        bool       `json:"degraded,omitempty"`
}

// ── Scouting de proveedores ───────────────────────────────────────────────────

// ScoutingRequest búsqueda de fornitori alternativos (modo ITEM) o de
// competitors de un proveedor (modo SUPPLIER).
type ScoutingRequest struct {
	Mode        string `json:"mode"` // ITEM | SUPPLIER
	TargetName  string `json:"target_name"`
	Category    string `json:"category,omitempty"`    // modo ITEM
	CurrentCost string `json:"current_cost,omitempty"` // modo ITEM
	ContextName string `json:"context_name,omitempty"` // fornitore attuale (ITEM)
	Rating      string `json:"rating,omitempty"`       // modo SUPPLIER
}

// ScoutingSourceDTO fuente web citada por la búsqueda con grounding.
type ScoutingSourceDTO struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// ScoutingDTO análisis en Markdown más las fuentes web.
type ScoutingDTO struct {
	AnalysisText string              `json:"analysis_text"`
	Sources      []ScoutingSourceDTO `json:"sources"`
}

// ── Contenido de engagement ───────────────────────────────────────────────────

// EngagementRequest generación de RFI, NDA o RFQ para un candidato.
type EngagementRequest struct {
	Type          string `json:"type"` // RFI | NDA | RFQ
	CandidateName string `json:"candidate_name"`
	ItemName      string `json:"item_name"`
}

// EngagementDTO texto generado.
type EngagementDTO struct {
	Content string `json:"content"`
}
