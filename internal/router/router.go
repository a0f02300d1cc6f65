package router

import (
	"github.com/JoelHidalgo58/myapp-inv2/internal/config"
	"github.com/JoelHidalgo58/myapp-inv2/internal/handler"
	"github.com/JoelHidalgo58/myapp-inv2/internal/middleware"
	"github.com/JoelHidalgo58/myapp-inv2/internal/model"
	"github.com/JoelHidalgo58/myapp-inv2/internal/state"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// New builds the Gin engine over an already loaded state controller.
// The controller is constructed in main so shutdown can flush it after the
// HTTP server drains.
func New(cfg *config.Config, ctrl *state.Controller, log zerolog.Logger) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(ctrl, cfg)
	productosH := handler.NewProductosHandler(ctrl)
	ventasH := handler.NewVentasHandler(ctrl)
	usuariosH := handler.NewUsuariosHandler(ctrl)
	historialH := handler.NewHistorialHandler(ctrl)
	alertasH := handler.NewAlertasHandler(ctrl)
	reportesH := handler.NewReportesHandler(ctrl, cfg.PDFStoragePath, log)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health())
	r.POST("/v1/auth/login", authH.Login)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret, ctrl)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.POST("/auth/logout", authH.Logout)

		staff := middleware.RequireRol(ctrl, model.RolAdministrador, model.RolVendedor, model.RolInventarista)
		v1.GET("/productos", staff, productosH.Listar)
		v1.GET("/alertas", staff, alertasH.Listar)

		// Catalog writes: administrador or inventarista
		inventario := middleware.RequireRol(ctrl, model.RolAdministrador, model.RolInventarista)
		v1.POST("/productos", inventario, productosH.Crear)
		v1.PUT("/productos/:nombre", inventario, productosH.Actualizar)
		v1.DELETE("/productos/:nombre", inventario, productosH.Eliminar)

		// Sales: administrador or vendedor
		ventas := middleware.RequireRol(ctrl, model.RolAdministrador, model.RolVendedor)
		v1.POST("/ventas", ventas, ventasH.Registrar)
		v1.GET("/ventas", ventas, ventasH.Listar)
		v1.GET("/usuarios/clientes", ventas, usuariosH.ListarClientes)

		// User management: administrador only
		admin := middleware.RequireRol(ctrl, model.RolAdministrador)
		usuarios := v1.Group("/usuarios", admin)
		{
			usuarios.GET("", usuariosH.Listar)
			usuarios.POST("", usuariosH.Crear)
			usuarios.PUT("/:username", usuariosH.Actualizar)
			usuarios.DELETE("/:username", usuariosH.Eliminar)
		}

		v1.GET("/historial", admin, historialH.Listar)

		reportes := v1.Group("/reportes", admin)
		{
			reportes.GET("/ventas", reportesH.Ventas)
			reportes.GET("/inventario", reportesH.Inventario)
			reportes.GET("/clientes", reportesH.Clientes)
			reportes.POST("/factura", reportesH.Factura)
		}
	}

	return r
}
