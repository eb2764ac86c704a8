package router

import (
	"time"

	"github.com/santosdevelop/Manto/internal/config"
	"github.com/santosdevelop/Manto/internal/handler"
	"github.com/santosdevelop/Manto/internal/middleware"
	"github.com/santosdevelop/Manto/internal/reports"
	"github.com/santosdevelop/Manto/internal/repository"
	"github.com/santosdevelop/Manto/internal/service"
	"github.com/santosdevelop/Manto/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← Mongo/Redis
func New(cfg *config.Config, db *mongo.Database, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
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
	r.Use(middleware.RateLimiter(200, time.Minute)) // 200 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	inventarioRepo := repository.NewInventarioRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	galponRepo := repository.NewGalponRepository(db)
	mantenimientoRepo := repository.NewMantenimientoRepository(db)
	importLogRepo := repository.NewImportLogRepository(db)

	// Report cache — every mantenimiento write invalidates it
	cache := reports.NewCache(rdb, mantenimientoRepo.ListarTodos)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	inventarioSvc := service.NewInventarioService(inventarioRepo, categoriaRepo)
	categoriaSvc := service.NewCategoriaService(categoriaRepo, inventarioRepo)
	galponSvc := service.NewGalponService(galponRepo)
	mantenimientoSvc := service.NewMantenimientoService(mantenimientoRepo, galponRepo, cache)
	reporteSvc := service.NewReporteService(mantenimientoRepo, cache)
	usuarioSvc := service.NewUsuarioService(usuarioRepo, inventarioRepo)
	importacionSvc := service.NewImportacionService(inventarioRepo, importLogRepo, rdb, dispatcher, cfg.ImportTmpPath)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	inventariosH := handler.NewInventariosHandler(inventarioSvc)
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	galponesH := handler.NewGalponesHandler(galponSvc, mantenimientoSvc)
	reportesH := handler.NewReportesHandler(reporteSvc)
	usuariosH := handler.NewUsuariosHandler(usuarioSvc)
	importacionH := handler.NewImportacionHandler(importacionSvc, cfg.MaxImportBytes)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Inventario — lectura para todos los roles del panel
		v1.GET("/inventarios", inventariosH.Listar)
		v1.GET("/inventarios/export", inventariosH.Exportar)
		v1.GET("/inventarios/plantilla", inventariosH.Plantilla)
		v1.GET("/inventarios/:id", inventariosH.Obtener)
		// Escritura — administrador o moderador
		inv := v1.Group("/inventarios", middleware.RequireRole("administrador", "moderador"))
		{
			inv.POST("", inventariosH.Crear)
			inv.PUT("/:id", inventariosH.Actualizar)
			inv.DELETE("/:id", inventariosH.Eliminar)
		}

		// Importación masiva — administrador o moderador
		imp := v1.Group("/inventarios/import", middleware.RequireRole("administrador", "moderador"))
		{
			imp.POST("/preview", importacionH.Preview)
			imp.POST("", importacionH.Importar)
			imp.GET("/:id/progreso", importacionH.Progreso)
			imp.GET("/logs", importacionH.Logs)
		}

		v1.GET("/categorias", categoriasH.Listar)
		cats := v1.Group("/categorias", middleware.RequireRole("administrador", "moderador"))
		{
			cats.POST("", categoriasH.Crear)
			cats.DELETE("/:id", categoriasH.Eliminar)
		}

		v1.GET("/galpones", galponesH.Listar)
		v1.GET("/galpones/pdf", galponesH.ExportarPDF)
		v1.GET("/galpones/:id/mantenimientos", galponesH.ListarMantenimientos)
		galp := v1.Group("/galpones", middleware.RequireRole("administrador", "moderador", "tecnico"))
		{
			galp.POST("", galponesH.Crear)
			galp.PUT("/:id", galponesH.Actualizar)
			galp.DELETE("/:id", middleware.RequireRole("administrador"), galponesH.Eliminar)
			galp.POST("/:id/mantenimientos", galponesH.CrearMantenimiento)
		}

		v1.GET("/reportes/mantenimientos", reportesH.Mantenimientos)

		// Personal y EPP
		v1.GET("/usuarios", usuariosH.Listar)
		v1.GET("/usuarios/:id/asignaciones", usuariosH.ListarAsignaciones)
		usrs := v1.Group("/usuarios", middleware.RequireRole("administrador"))
		{
			usrs.PATCH("/:id/estado", usuariosH.ActualizarEstado)
			usrs.PATCH("/:id/rol", usuariosH.ActualizarRol)
		}
		epp := v1.Group("/usuarios", middleware.RequireRole("administrador", "moderador"))
		{
			epp.POST("/:id/epp", usuariosH.AsignarEpp)
			epp.POST("/:id/epp/:itemId/devolver", usuariosH.DevolverEpp)
		}
	}

	return r
}
