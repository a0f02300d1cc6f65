package dto

// ─── Response DTOs ───────────────────────────────────────────────────────────

type AccionHistorialResponse struct {
	Tipo        string `json:"tipo"`
	Descripcion string `json:"descripcion"`
	Fecha       string `json:"fecha"`
	Usuario     string `json:"usuario"`
}

type HistorialListResponse struct {
	Data  []AccionHistorialResponse `json:"data"`
	Total int                       `json:"total"`
}

type AlertaResponse struct {
	Tipo      string `json:"tipo"`
	Mensaje   string `json:"mensaje"`
	Fecha     string `json:"fecha"`
	Prioridad string `json:"prioridad"`
	Producto  string `json:"producto,omitempty"`
}
