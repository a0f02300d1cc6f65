package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemVentaRequest struct {
	ProductoNombre string `json:"producto_nombre" validate:"required,min=1"`
	Cantidad       int    `json:"cantidad"        validate:"required,min=1"`
}

type RegistrarVentaRequest struct {
	// ClienteUsername must belong to a customer-tier account (Regular, VIP, Mayorista).
	ClienteUsername string             `json:"cliente_username" validate:"required,min=1"`
	Items           []ItemVentaRequest `json:"items"            validate:"required,min=1,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// VentaResponse carries the product and client exactly as they were at sale
// time. Later catalog or account edits never show through here.
type VentaResponse struct {
	ID                string          `json:"id"`
	ProductoNombre    string          `json:"producto_nombre"`
	ProductoCategoria string          `json:"producto_categoria"`
	Cantidad          int             `json:"cantidad"`
	PrecioUnitario    decimal.Decimal `json:"precio_unitario"`
	Total             decimal.Decimal `json:"total"`
	Fecha             string          `json:"fecha"`
	Vendedor          string          `json:"vendedor"`
	ClienteUsername   string          `json:"cliente_username"`
	ClienteNombre     string          `json:"cliente_nombre"`
	ClienteRol        string          `json:"cliente_rol"`
}

type VentaListResponse struct {
	Data  []VentaResponse `json:"data"`
	Total int             `json:"total"`
}
