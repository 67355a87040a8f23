package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"book-catalog/internal/domain/user"
	"book-catalog/internal/handler/api"
	"book-catalog/internal/handler/middleware"
	"book-catalog/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Reservation *api.ReservationHandler
	Book        *api.BookHandler
	Author      *api.AuthorHandler
	Genre       *api.GenreHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	v1 := engine.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})
		}

		authed := v1.Group("")
		authed.Use(authMiddleware.RequireAuth())
		{
			users := authed.Group("/users")
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})

			reserv := authed.Group("/reserv")
			addRoutes(reserv, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Reservation.Return},
			})

			librarian := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleLibrarian)}

			books := authed.Group("/books")
			addRoutes(books, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Book.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Book.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Book.Create, Mw: librarian},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Book.Update, Mw: librarian},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Book.Delete, Mw: librarian},
			})

			authors := authed.Group("/authors")
			addRoutes(authors, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Author.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Author.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Author.Create, Mw: librarian},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Author.Update, Mw: librarian},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Author.Delete, Mw: librarian},
			})

			genres := authed.Group("/genres")
			addRoutes(genres, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Genre.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Genre.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Genre.Create, Mw: librarian},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Genre.Update, Mw: librarian},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Genre.Delete, Mw: librarian},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
