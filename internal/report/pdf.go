// Package report implements the export collaborator: it consumes read-only
// snapshots of the collections and produces PDF files under a storage
// directory. Callers treat any failure as "generation failed".
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/JoelHidalgo58/myapp-inv2/internal/model"
)

const (
	tituloNegocio = "Inventario y Ventas"
	fechaArchivo  = "20060102_150405"
)

func nuevoDocumento(titulo, subtitulo string) (*fpdf.Fpdf, float64) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, tituloNegocio, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW, 7, titulo, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, subtitulo, "", 1, "C", false, 0, "")
	pdf.Ln(4)
	return pdf, contentW
}

func encabezadoTabla(pdf *fpdf.Fpdf, anchos []float64, titulos []string) {
	pdf.SetFont("Helvetica", "B", 9)
	for i, t := range titulos {
		salto := 0
		if i == len(titulos)-1 {
			salto = 1
		}
		pdf.CellFormat(anchos[i], 6, t, "B", salto, "L", false, 0, "")
	}
	pdf.SetFont("Helvetica", "", 9)
}

func guardar(pdf *fpdf.Fpdf, storagePath, prefijo string) (string, error) {
	if err := os.MkdirAll(storagePath, 0o755); err != nil {
		return "", fmt.Errorf("pdf: crear directorio: %w", err)
	}
	nombre := fmt.Sprintf("%s_%s.pdf", prefijo, time.Now().Format(fechaArchivo))
	ruta := filepath.Join(storagePath, nombre)
	if err := pdf.OutputFileAndClose(ruta); err != nil {
		return "", fmt.Errorf("pdf: escribir archivo: %w", err)
	}
	return ruta, nil
}

// GenerarReporteVentas renders the sales ledger with a grand total row.
func GenerarReporteVentas(ventas []model.Venta, storagePath string) (string, error) {
	sub := fmt.Sprintf("Reporte de Ventas — %d operaciones", len(ventas))
	pdf, contentW := nuevoDocumento("Reporte de Ventas", sub)

	anchos := []float64{
		contentW * 0.16, // fecha
		contentW * 0.26, // producto
		contentW * 0.10, // cantidad
		contentW * 0.14, // precio unit
		contentW * 0.14, // total
		contentW * 0.20, // cliente
	}
	encabezadoTabla(pdf, anchos, []string{"Fecha", "Producto", "Cant", "P. Unit", "Total", "Cliente"})

	granTotal := decimal.Zero
	for _, v := range ventas {
		pdf.CellFormat(anchos[0], 6, v.Fecha.Format("02/01/2006"), "", 0, "L", false, 0, "")
		pdf.CellFormat(anchos[1], 6, recortar(v.Producto.Nombre, 26), "", 0, "L", false, 0, "")
		pdf.CellFormat(anchos[2], 6, fmt.Sprintf("x%d", v.Cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(anchos[3], 6, "$"+v.PrecioUnitario.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(anchos[4], 6, "$"+v.Total.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(anchos[5], 6, recortar(v.Cliente.Nombre, 20), "", 1, "L", false, 0, "")
		granTotal = granTotal.Add(v.Total)
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW*0.66, 7, "TOTAL:", "T", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.14, 7, "$"+granTotal.StringFixed(2), "T", 0, "R", false, 0, "")
	pdf.CellFormat(contentW*0.20, 7, "", "T", 1, "L", false, 0, "")

	return guardar(pdf, storagePath, "Reporte_Ventas")
}

// GenerarReporteInventario renders the product catalog with stock valuation.
func GenerarReporteInventario(productos []model.Producto, storagePath string) (string, error) {
	sub := fmt.Sprintf("Reporte de Inventario — %d productos", len(productos))
	pdf, contentW := nuevoDocumento("Reporte de Inventario", sub)

	anchos := []float64{
		contentW * 0.10, // id
		contentW * 0.34, // nombre
		contentW * 0.18, // categoria
		contentW * 0.12, // cantidad
		contentW * 0.13, // precio
		contentW * 0.13, // valor
	}
	encabezadoTabla(pdf, anchos, []string{"ID", "Producto", "Categoría", "Stock", "Precio", "Valor"})

	valorTotal := decimal.Zero
	for _, p := range productos {
		valor := p.Precio.Mul(decimal.NewFromInt(int64(p.Cantidad)))
		pdf.CellFormat(anchos[0], 6, p.ID, "", 0, "L", false, 0, "")
		pdf.CellFormat(anchos[1], 6, recortar(p.Nombre, 34), "", 0, "L", false, 0, "")
		pdf.CellFormat(anchos[2], 6, recortar(p.Categoria, 16), "", 0, "L", false, 0, "")
		pdf.CellFormat(anchos[3], 6, fmt.Sprintf("%d", p.Cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(anchos[4], 6, "$"+p.Precio.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(anchos[5], 6, "$"+valor.StringFixed(2), "", 1, "R", false, 0, "")
		valorTotal = valorTotal.Add(valor)
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW*0.87, 7, "VALOR TOTAL DEL INVENTARIO:", "T", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.13, 7, "$"+valorTotal.StringFixed(2), "T", 1, "R", false, 0, "")

	return guardar(pdf, storagePath, "Reporte_Inventario")
}

// GenerarReporteClientes renders the customer accounts (customer tiers only).
func GenerarReporteClientes(usuarios []model.Usuario, storagePath string) (string, error) {
	clientes := make([]model.Usuario, 0, len(usuarios))
	for _, u := range usuarios {
		if model.EsCliente(u.Rol) {
			clientes = append(clientes, u)
		}
	}

	sub := fmt.Sprintf("Reporte de Clientes — %d clientes", len(clientes))
	pdf, contentW := nuevoDocumento("Reporte de Clientes", sub)

	anchos := []float64{
		contentW * 0.35, // nombre
		contentW * 0.25, // username
		contentW * 0.20, // cedula
		contentW * 0.20, // tipo
	}
	encabezadoTabla(pdf, anchos, []string{"Nombre", "Usuario", "Cédula", "Tipo"})

	for _, u := range clientes {
		pdf.CellFormat(anchos[0], 6, recortar(u.Nombre, 34), "", 0, "L", false, 0, "")
		pdf.CellFormat(anchos[1], 6, recortar(u.Username, 24), "", 0, "L", false, 0, "")
		pdf.CellFormat(anchos[2], 6, recortar(u.Cedula, 18), "", 0, "L", false, 0, "")
		pdf.CellFormat(anchos[3], 6, u.Rol, "", 1, "L", false, 0, "")
	}

	return guardar(pdf, storagePath, "Reporte_Clientes")
}

// GenerarFactura renders an invoice for one client: the given sales (already
// filtered by client and date by the caller) with an invoice total.
func GenerarFactura(cliente model.Usuario, ventas []model.Venta, fecha string, storagePath string) (string, error) {
	sub := fmt.Sprintf("Factura — %s (%s)", cliente.Nombre, fecha)
	pdf, contentW := nuevoDocumento("Factura", sub)

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Cliente: "+cliente.Nombre, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, "Cédula: "+cliente.Cedula, "", 1, "L", false, 0, "")
	pdf.Ln(3)

	anchos := []float64{
		contentW * 0.44, // producto
		contentW * 0.14, // cantidad
		contentW * 0.20, // precio unit
		contentW * 0.22, // subtotal
	}
	encabezadoTabla(pdf, anchos, []string{"Producto", "Cant", "P. Unit", "Subtotal"})

	total := decimal.Zero
	for _, v := range ventas {
		pdf.CellFormat(anchos[0], 6, recortar(v.Producto.Nombre, 42), "", 0, "L", false, 0, "")
		pdf.CellFormat(anchos[1], 6, fmt.Sprintf("x%d", v.Cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(anchos[2], 6, "$"+v.PrecioUnitario.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(anchos[3], 6, "$"+v.Total.StringFixed(2), "", 1, "R", false, 0, "")
		total = total.Add(v.Total)
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW*0.78, 8, "TOTAL A PAGAR:", "T", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.22, 8, "$"+total.StringFixed(2), "T", 1, "R", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, "¡Gracias por su compra!", "", 1, "C", false, 0, "")

	return guardar(pdf, storagePath, "Factura_"+cliente.Username)
}

func recortar(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
