// Package pdf implementa la representación gráfica de una orden de compra
// (ordine di acquisto) para envío al fornitore.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Ragione sociale + P.IVA │ N° Ordine + Data          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMITTENTE: Indirizzo / Tel / Email / IBAN                   │
//	│  FORNITORE: Nome + contatto + termini di pagamento           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELLA: SKU | Descrizione | Q.tà | Prezzo | Totale         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALE ORDINE + consegna prevista + tracking                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con il numero ordine + nota legale               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/eb-pro/procurement-api/internal/application/ports"
	"github.com/eb-pro/procurement-api/internal/domain/entity"
)

// Verificar en tiempo de compilación el contrato del puerto.
var _ ports.OrderPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 80, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.OrderPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateOrderPDF genera el PDF de la orden y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateOrderPDF(
	_ context.Context,
	order *entity.PurchaseOrder,
	supplier *entity.Supplier,
	profile *entity.CompanyProfile,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ordine di Acquisto "+order.ID, true).
		WithAuthor(profile.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order, profile))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(emittenteRow(profile))
	m.AddRows(fornitoreRow(order, supplier))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de líneas; si el encabezado no trae detalle se imprime una
	// única línea descriptiva con el total.
	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(order) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(order))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(order, profile) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: ragione sociale + P.IVA (izq) y número de orden + fecha (der).
func headerRow(order *entity.PurchaseOrder, profile *entity.CompanyProfile) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(profile.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("P.IVA: "+profile.VATNumber, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ORDINE DI ACQUISTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(order.ID, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Data: "+nonEmpty(order.Date, "—"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// emittenteRow: datos fiscales y bancarios de la empresa emisora.
func emittenteRow(profile *entity.CompanyProfile) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("EMITTENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s, %s %s (%s), %s   |   Tel: %s   |   Email: %s",
				profile.Address, profile.ZipCode, profile.City, profile.Province, profile.Country,
				nonEmpty(profile.Phone, "—"),
				nonEmpty(profile.Email, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
			text.New(fmt.Sprintf("Banca: %s   |   IBAN: %s   |   SWIFT: %s",
				nonEmpty(profile.BankName, "—"),
				nonEmpty(profile.IBAN, "—"),
				nonEmpty(profile.SWIFT, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// fornitoreRow: destinatario del ordine. Con supplier nil se degrada al
// nombre desnormalizado del encabezado.
func fornitoreRow(order *entity.PurchaseOrder, supplier *entity.Supplier) core.Row {
	name := order.SupplierName
	contact := "—"
	terms := "—"
	if supplier != nil {
		name = supplier.Name
		contact = nonEmpty(supplier.Email, "—")
		terms = nonEmpty(supplier.PaymentTerms, "—")
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("FORNITORE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(name, "—"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Termini di pagamento: %s", contact, terms),
				props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Descrizione", 5, align.Left),
		h("Q.tà", 1, align.Center),
		h("Prezzo", 2, align.Right),
		h("Totale", 2, align.Right),
	)
}

// tableLineRows: una fila por línea; sin detalle, una fila única con el total.
func tableLineRows(order *entity.PurchaseOrder) []core.Row {
	if len(order.Lines) == 0 {
		return []core.Row{row.New(7).Add(
			col.New(2).Add(text.New("—", props.Text{Size: 8, Top: 1})),
			col.New(5).Add(text.New("Fornitura come da accordi", props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New("1", props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New("€ "+order.TotalAmount.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New("€ "+order.TotalAmount.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		)}
	}
	result := make([]core.Row, 0, len(order.Lines))
	for _, l := range order.Lines {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(l.SKU, props.Text{Size: 8, Top: 1})),
			col.New(5).Add(text.New(l.Description, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", l.Qty), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New("€ "+l.UnitPrice.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New("€ "+l.Total.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRow: total del ordine + consegna prevista + tracking.
func totalsRow(order *entity.PurchaseOrder) core.Row {
	return row.New(20).Add(
		col.New(6).Add(
			text.New("Consegna prevista: "+nonEmpty(order.ExpectedDelivery, "da concordare"), props.Text{
				Size: 8, Top: 2, Color: colorGray,
			}),
			text.New("Tracking: "+nonEmpty(order.TrackingCode, "—"), props.Text{
				Size: 8, Top: 7, Color: colorGray,
			}),
			text.New("Stato: "+string(order.Status), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
		col.New(3).Add(
			text.New("TOTALE ORDINE:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 4, Right: 2,
			}),
		),
		col.New(3).Add(
			text.New("€ "+order.TotalAmount.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 4, Right: 1,
			}),
		),
	)
}

// footerRows: QR con el número de orden + nota legale.
func footerRows(order *entity.PurchaseOrder, profile *entity.CompanyProfile) []core.Row {
	return []core.Row{
		row.New(35).Add(
			col.New(3).Add(code.NewQr(order.ID, props.Rect{
				Percent: 90,
				Center:  true,
			})),
			col.New(9).Add(
				text.New("Citare il numero d'ordine in bolla di consegna e fattura.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
				text.New("Ufficio Acquisti — "+profile.CompanyName, props.Text{
					Style: fontstyle.Bold, Size: 10, Top: 14,
					Left: 3, Color: colorPrimary,
				}),
				text.New(nonEmpty(profile.Website, ""), props.Text{
					Size: 8, Top: 22, Left: 3, Color: colorGray,
				}),
			),
		),
		row.New(8).Add(col.New(12).Add(
			text.New(
				"Il presente ordine è regolato dalle condizioni generali di acquisto di "+
					profile.CompanyName+". La merce viaggia a rischio del fornitore fino alla consegna.",
				props.Text{Size: 6.5, Color: colorGray, Top: 2},
			),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
