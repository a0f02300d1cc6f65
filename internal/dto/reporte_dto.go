package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// GenerarFacturaRequest asks for an invoice covering one client's purchases
// on one calendar day.
type GenerarFacturaRequest struct {
	ClienteUsername string `json:"cliente_username" validate:"required,min=1"`
	Fecha           string `json:"fecha"            validate:"required,datetime=2006-01-02"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ReporteResponse struct {
	Archivo string `json:"archivo"`
}
