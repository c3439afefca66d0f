package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/eb-pro/procurement-api/internal/domain"
)

const defaultBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"

// RangeClient contrato mínimo contra el backend de hoja de cálculo.
// El token se pasa por llamada: el store toma la foto de la sesión al inicio
// de cada petición y la usa durante toda la operación.
type RangeClient interface {
	Get(ctx context.Context, token, spreadsheetID, rangeA1 string) ([][]string, error)
	Update(ctx context.Context, token, spreadsheetID, rangeA1 string, row []any) error
	Append(ctx context.Context, token, spreadsheetID, rangeA1 string, row []any) error
}

// Client adaptador REST de la API de Google Sheets v4 sobre net/http.
// Una lectura vacía con token válido es un resultado legítimo (devuelve
// [][]string vacío, sin error); la ausencia de token se resuelve en el
// store, nunca aquí.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient construye el adaptador con timeout de red propio.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    defaultBaseURL,
	}
}

// NewClientWithBaseURL variante para tests (httptest.Server).
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

// ── Payloads de la API values.* ───────────────────────────────────────────────

type valuesPayload struct {
	Values [][]json.RawMessage `json:"values"`
}

type writePayload struct {
	Values [][]any `json:"values"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Get lee un rango: GET /{id}/values/{range}.
func (c *Client) Get(ctx context.Context, token, spreadsheetID, rangeA1 string) ([][]string, error) {
	endpoint := fmt.Sprintf("%s/%s/values/%s", c.baseURL, spreadsheetID, url.PathEscape(rangeA1))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("sheets: crear request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	body, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRangeRead, err)
	}

	var payload valuesPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: deserializar valores: %v", domain.ErrRangeRead, err)
	}

	rows := make([][]string, 0, len(payload.Values))
	for _, raw := range payload.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, decodeCell(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Update reemplaza exactamente una fila:
// PUT /{id}/values/{range}?valueInputOption=USER_ENTERED.
func (c *Client) Update(ctx context.Context, token, spreadsheetID, rangeA1 string, row []any) error {
	endpoint := fmt.Sprintf("%s/%s/values/%s?valueInputOption=USER_ENTERED",
		c.baseURL, spreadsheetID, url.PathEscape(rangeA1))
	return c.write(ctx, http.MethodPut, endpoint, token, row)
}

// Append añade una fila al final del rango; el backend asigna la posición:
// POST /{id}/values/{range}:append?valueInputOption=USER_ENTERED.
func (c *Client) Append(ctx context.Context, token, spreadsheetID, rangeA1 string, row []any) error {
	endpoint := fmt.Sprintf("%s/%s/values/%s:append?valueInputOption=USER_ENTERED",
		c.baseURL, spreadsheetID, url.PathEscape(rangeA1))
	return c.write(ctx, http.MethodPost, endpoint, token, row)
}

func (c *Client) write(ctx context.Context, method, endpoint, token string, row []any) error {
	body, err := json.Marshal(writePayload{Values: [][]any{row}})
	if err != nil {
		return fmt.Errorf("sheets: serializar fila: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("sheets: crear request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	_, err = c.do(req)
	return err
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheets: llamada HTTP: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("sheets: leer respuesta: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("sheets: API %d (%s): %s",
				apiErr.Error.Code, apiErr.Error.Status, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("sheets: API HTTP %d", resp.StatusCode)
	}
	return body, nil
}

// decodeCell normaliza una celda JSON (string | number | bool | null) a string.
func decodeCell(raw json.RawMessage) string {
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	var f float64
	if json.Unmarshal(raw, &f) == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	var b bool
	if json.Unmarshal(raw, &b) == nil {
		return strconv.FormatBool(b)
	}
	return ""
}
