package router

import (
	"time"

	"restogestion/internal/config"
	"restogestion/internal/handler"
	"restogestion/internal/middleware"
	"restogestion/internal/model"
	"restogestion/internal/repository"
	"restogestion/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
// rdb may be nil; rate limiting then falls back to process memory.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	var counter middleware.Counter = middleware.NewMemoryCounter()
	if rdb != nil {
		counter = middleware.NewRedisCounter(rdb)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(counter, "api", cfg.RateLimitPerMinute, time.Minute,
		"Demasiadas solicitudes. Intente nuevamente en un momento."))

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	restauranteRepo := repository.NewCrudRepository[model.Restaurante](db)
	ventaRepo := repository.NewCrudRepository[model.Venta](db)
	gastoRepo := repository.NewCrudRepository[model.Gasto](db)
	facturaRepo := repository.NewCrudRepository[model.FacturaAlbaran](db)
	proveedorRepo := repository.NewCrudRepository[model.Proveedor](db)
	margenRepo := repository.NewCrudRepository[model.MargenObjetivo](db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, restauranteRepo, cfg)
	usuarioSvc := service.NewCrudService[model.Usuario](usuarioRepo,
		service.ConParche(service.HashPasswordParche(cfg.BcryptCost)))

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(usuarioSvc)
	restaurantesH := handler.NewRestaurantesHandler(service.NewCrudService(restauranteRepo))
	ventasH := handler.NewVentasHandler(service.NewCrudService(ventaRepo))
	gastosH := handler.NewGastosHandler(service.NewCrudService(gastoRepo))
	facturasH := handler.NewFacturasHandler(service.NewCrudService(facturaRepo))
	proveedoresH := handler.NewProveedoresHandler(service.NewCrudService(proveedorRepo))
	margenesH := handler.NewMargenesHandler(service.NewCrudService(margenRepo))

	r.GET("/health", handler.Health(db, rdb))

	loginLimiter := middleware.RateLimiter(counter, "login", cfg.LoginRateLimitPerMinute, time.Minute,
		"Demasiados intentos de login. Intente en 1 minuto.")
	auth := middleware.JWTAuth(cfg.JWTSecret)

	// The same routes are served at the root and under /api.
	for _, prefix := range []string{"", "/api"} {
		g := r.Group(prefix)

		// ── Public / bootstrap ───────────────────────────────────────────────
		g.POST("/login", loginLimiter, authH.Login)
		g.POST("/register", middleware.OptionalJWTAuth(cfg.JWTSecret), authH.Register)

		p := g.Group("", auth)

		p.GET("/private", authH.Private)
		p.PUT("/cambiar-password", authH.CambiarPassword)

		// ── Usuarios ─────────────────────────────────────────────────────────
		p.GET("/usuarios", usuariosH.Listar)
		p.GET("/usuarios/:id", usuariosH.Obtener)
		p.PUT("/usuarios/:id", usuariosH.Actualizar)
		p.DELETE("/usuarios/:id", usuariosH.Eliminar)

		// ── Gastos (no DELETE) ───────────────────────────────────────────────
		p.GET("/gastos", gastosH.Listar)
		p.POST("/gastos", gastosH.Crear)
		p.GET("/gastos/:id", gastosH.Obtener)
		p.PUT("/gastos/:id", gastosH.Actualizar)

		// ── Full CRUD ────────────────────────────────────────────────────────
		crud(p, "/restaurantes", restaurantesH)
		crud(p, "/ventas", ventasH)
		crud(p, "/facturas", facturasH)
		crud(p, "/proveedores", proveedoresH)
		crud(p, "/margen", margenesH)
	}

	return r
}

func crud[M any](g *gin.RouterGroup, path string, h *handler.CrudHandler[M]) {
	g.GET(path, h.Listar)
	g.POST(path, h.Crear)
	g.GET(path+"/:id", h.Obtener)
	g.PUT(path+"/:id", h.Actualizar)
	g.DELETE(path+"/:id", h.Eliminar)
}
