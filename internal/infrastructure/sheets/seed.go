package sheets

// Dataset semilla servido en modo no autenticado. Las filas están en el
// mismo formato posicional que la hoja real: toda la lógica de filtro,
// slicing y decodificación es idéntica en ambos modos. Existe para que la
// UI y los tests funcionen sin credenciales reales, no como modo degradado
// con otro contrato.

func seedRows(sheet string) [][]string {
	switch sheet {
	case SheetItems:
		return [][]string{
			{"HYD-VAL-001", "Valvola Controllo Flusso", "Idraulica", "12", "20", "150", "SUP-01", "7"},
			{"STL-PLT-5MM", "Piastra Acciaio 5mm", "Carpenteria", "500", "200", "45", "SUP-02", "7"},
			{"ELC-PLC-X2", "Centralina PLC Veicolare", "Elettronica", "5", "10", "800", "SUP-03", "7"},
			{"PNT-YEL-RAL", "Vernice Gialla RAL1023", "Verniciatura", "50", "40", "20", "SUP-04", "7"},
			{"WLD-ROD-X1", "Elettrodi Saldatura Inox", "Saldatura", "1000", "500", "0.5", "SUP-02", "7"},
		}
	case SheetSuppliers:
		return [][]string{
			{"SUP-01", "HydraForce Italia", "4.8", "sales@hydraforce.it", "60 DFFM"},
			{"SUP-02", "Acciaierie Venete", "4.2", "ordini@acciaierie.it", "30 DF"},
			{"SUP-03", "AutoElectric Pro", "3.9", "info@autoelectric.com", "RB 30/60"},
		}
	case SheetCustomers:
		return [][]string{
			{"CUST-01", "Municipalità di Milano", "appalti@comune.milano.it", "01199250158", "Piazza della Scala, 2", "Lombardia", "Bonifico 30gg"},
			{"CUST-02", "Roma Multiservizi", "acquisti@romamultiservizi.it", "05438871003", "Via Tiburtina 100", "Lazio", "Bonifico 60gg"},
			{"CUST-03", "Hera SpA", "procurement@gruppohera.it", "04245520376", "Viale Berti Pichat 2/4", "Emilia-Romagna", "Bonifico 90gg"},
		}
	case SheetOrders:
		return [][]string{
			{"PO-2023-1001", "2023-10-01", "SUP-01", "HydraForce Italia", "RECEIVED", "4500.50", "2023-10-20", "DHL-123456"},
			{"PO-2023-1015", "2023-10-18", "SUP-02", "Acciaierie Venete", "SHIPPED", "9000.00", "2023-10-28", "BRT-998877"},
		}
	}
	return nil
}
