package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/wementor/mentor-directory-api/internal/config"
	"github.com/wementor/mentor-directory-api/internal/middleware"
	"github.com/wementor/mentor-directory-api/internal/usecase"
)

// RouterDeps bundles everything the route table needs.
type RouterDeps struct {
	Config       *config.Config
	Logger       *zerolog.Logger
	AuthUsecase  usecase.AuthUsecase
	AdminUsecase usecase.AdminUsecase

	Auth           *AuthHandler
	Admins         *AdminHandler
	Categories     *CategoryHandler
	Mentors        *MentorHandler
	SocialLinks    *SocialLinkHandler
	WhitelistEmail *WhitelistEmailHandler
	Files          *FileHandler
}

// NewRouter mounts the versioned route table. Protected groups sit behind
// the session guard; admin deletion, promotion and the whitelist behind
// the super admin guard on top of it.
func NewRouter(deps RouterDeps) *chi.Mux {
	requireAuth := middleware.RequireAuth(deps.AuthUsecase, deps.Config.Session.CookieName)
	requireSuperAdmin := middleware.RequireSuperAdmin(deps.AdminUsecase, deps.Logger, deps.Config.Env)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(deps.Logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Get("/login", deps.Auth.Login)
			r.Get("/google/callback", deps.Auth.GoogleCallback)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Get("/success", deps.Auth.Success)
				r.Get("/logout", deps.Auth.Logout)
			})
		})

		r.Route("/admins", func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/", deps.Admins.List)
			r.Get("/super_admin", deps.Admins.ListSuperAdmins)
			r.Get("/email/{email}", deps.Admins.GetByEmail)
			r.Get("/id/{adminId}", deps.Admins.GetByID)
			r.Put("/id/{adminId}", deps.Admins.Update)

			r.Group(func(r chi.Router) {
				r.Use(requireSuperAdmin)
				r.Delete("/", deps.Admins.Delete)
				r.Put("/set_super_admin", deps.Admins.SetSuperAdmin)
			})
		})

		r.Route("/categories", func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", deps.Categories.Create)
			r.Get("/", deps.Categories.List)
			r.Get("/{categoryId}", deps.Categories.Get)
			r.Put("/{categoryId}", deps.Categories.Update)
			r.Delete("/{categoryId}", deps.Categories.Delete)
		})

		r.Route("/mentors", func(r chi.Router) {
			r.With(requireAuth).Post("/", deps.Mentors.Create)
			r.Get("/", deps.Mentors.List)
			r.Get("/search", deps.Mentors.Search)
			r.Get("/{mentorId}", deps.Mentors.Get)
			r.Put("/{mentorId}", deps.Mentors.Update)
			r.Delete("/{mentorId}", deps.Mentors.Delete)
			r.Put("/{mentorId}/categories", deps.Mentors.AddCategories)
			r.Delete("/{mentorId}/categories", deps.Mentors.RemoveCategory)
			r.Put("/{mentorId}/avatar", deps.Mentors.SetAvatar)
		})

		r.Route("/social_links", func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", deps.SocialLinks.Create)
			r.Get("/", deps.SocialLinks.Get)
			r.Put("/", deps.SocialLinks.Update)
		})

		r.Route("/whitelist_email", func(r chi.Router) {
			r.Use(requireAuth, requireSuperAdmin)
			r.Post("/", deps.WhitelistEmail.Create)
			r.Get("/", deps.WhitelistEmail.List)
			r.Get("/{id}", deps.WhitelistEmail.Get)
			r.Put("/{id}", deps.WhitelistEmail.Update)
			r.Delete("/{id}", deps.WhitelistEmail.Delete)
		})

		r.Route("/uploads", func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", deps.Files.Upload)
			r.Get("/", deps.Files.List)
			r.Delete("/delete/{publicId}", deps.Files.Delete)
		})
	})

	return r
}

func requestLogger(logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Msg("request completed")
		})
	}
}
