package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Nombre    string          `json:"nombre"    validate:"required,min=1,max=120"`
	Cantidad  int             `json:"cantidad"  validate:"min=0"`
	Precio    decimal.Decimal `json:"precio"    validate:"min=0"`
	Categoria string          `json:"categoria"` // empty = "General"
}

type ActualizarProductoRequest struct {
	Nombre    string          `json:"nombre"    validate:"required,min=1,max=120"`
	Cantidad  int             `json:"cantidad"  validate:"min=0"`
	Precio    decimal.Decimal `json:"precio"    validate:"min=0"`
	Categoria string          `json:"categoria"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID        string          `json:"id"`
	Nombre    string          `json:"nombre"`
	Cantidad  int             `json:"cantidad"`
	Precio    decimal.Decimal `json:"precio"`
	Categoria string          `json:"categoria"`
}

type ProductoListResponse struct {
	Data  []ProductoResponse `json:"data"`
	Total int                `json:"total"`
}
