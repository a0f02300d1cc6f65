package handler

import (
	"time"

	"github.com/JoelHidalgo58/myapp-inv2/internal/dto"
	"github.com/JoelHidalgo58/myapp-inv2/internal/model"
)

func usuarioToResponse(u model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		Nombre:   u.Nombre,
		Username: u.Username,
		Rol:      u.Rol,
		Cedula:   u.Cedula,
	}
}

func productoToResponse(p model.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:        p.ID,
		Nombre:    p.Nombre,
		Cantidad:  p.Cantidad,
		Precio:    p.Precio,
		Categoria: p.Categoria,
	}
}

func ventaToResponse(v model.Venta) dto.VentaResponse {
	return dto.VentaResponse{
		ID:                v.ID,
		ProductoNombre:    v.Producto.Nombre,
		ProductoCategoria: v.Producto.Categoria,
		Cantidad:          v.Cantidad,
		PrecioUnitario:    v.PrecioUnitario,
		Total:             v.Total,
		Fecha:             v.Fecha.Format(time.RFC3339),
		Vendedor:          v.Vendedor,
		ClienteUsername:   v.Cliente.Username,
		ClienteNombre:     v.Cliente.Nombre,
		ClienteRol:        v.Cliente.Rol,
	}
}

func accionToResponse(a model.AccionHistorial) dto.AccionHistorialResponse {
	return dto.AccionHistorialResponse{
		Tipo:        string(a.Tipo),
		Descripcion: a.Descripcion,
		Fecha:       a.Fecha.Format(time.RFC3339),
		Usuario:     a.Usuario,
	}
}

func alertaToResponse(a model.Alerta) dto.AlertaResponse {
	resp := dto.AlertaResponse{
		Tipo:      string(a.Tipo),
		Mensaje:   a.Mensaje,
		Fecha:     a.Fecha.Format(time.RFC3339),
		Prioridad: string(a.Prioridad),
	}
	if a.Producto != nil {
		resp.Producto = a.Producto.Nombre
	}
	return resp
}
