package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/buildsetu/buildsetu-backend/api/controllers"
	"github.com/buildsetu/buildsetu-backend/api/middleware"
	"github.com/buildsetu/buildsetu-backend/internal/auth"
	"github.com/buildsetu/buildsetu-backend/internal/automation"
	"github.com/buildsetu/buildsetu-backend/internal/cart"
	"github.com/buildsetu/buildsetu-backend/internal/catalog"
	"github.com/buildsetu/buildsetu-backend/internal/clients"
	"github.com/buildsetu/buildsetu-backend/internal/contact"
	"github.com/buildsetu/buildsetu-backend/internal/quotations"
	"github.com/buildsetu/buildsetu-backend/internal/requests"
	"github.com/buildsetu/buildsetu-backend/internal/users"
	"github.com/buildsetu/buildsetu-backend/pkg/config"
	"github.com/buildsetu/buildsetu-backend/pkg/enums"
	"github.com/buildsetu/buildsetu-backend/pkg/logger"
	"github.com/buildsetu/buildsetu-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP controllers.Pinger,
	redisClient *redis.Client,
	authService auth.Service,
	userRepo *users.Repository,
	clientRepo *clients.Repository,
	catalogService *catalog.Service,
	cartService *cart.Service,
	requestsService requests.Service,
	quotationsService quotations.Service,
	contactService *contact.Service,
	automationForwarder *automation.Forwarder,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, redisClient))
	})

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", controllers.CatalogList(catalogService, logg))
			r.Get("/categories", controllers.CatalogCategories(catalogService, logg))
			r.Get("/{slug}", controllers.CatalogGet(catalogService, logg))
		})
		r.With(middleware.Idempotency(redisClient, logg)).
			Post("/contact", controllers.ContactSubmit(contactService, logg))
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(
			middleware.AuthRateLimit(registerPolicy, redisClient, logg),
			middleware.Idempotency(redisClient, logg),
		).Post("/register", controllers.AuthRegister(authService, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).
			Post("/login", controllers.AuthLogin(authService, logg))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Use(middleware.Idempotency(redisClient, logg))

		r.Get("/ping", controllers.PrivatePing())
		r.Post("/v1/auth/select-role", controllers.AuthSelectRole(authService, logg))
		r.Get("/v1/auth/me", controllers.AuthMe(userRepo, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(enums.RoleClient.String(), logg))

			r.Route("/v1/cart", func(r chi.Router) {
				r.Get("/", controllers.CartGet(cartService, logg))
				r.Delete("/", controllers.CartClear(cartService, logg))
				r.Post("/items", controllers.CartAddItem(cartService, logg))
				r.Delete("/items", controllers.CartRemoveItem(cartService, logg))
			})
			r.Route("/v1/requests", func(r chi.Router) {
				r.Post("/", controllers.RequestSubmit(requestsService, logg))
				r.Get("/", controllers.RequestListMine(requestsService, logg))
			})
			r.Get("/v1/clients/me", controllers.ClientMe(clientRepo, logg))
			r.Get("/v1/orders", controllers.FinalOrderListMine(quotationsService, logg))
			r.Post("/v1/automation/create-request", controllers.AutomationCreateRequest(automationForwarder, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(enums.RoleSupplier.String(), logg))

			r.Route("/v1/supplier/requests", func(r chi.Router) {
				r.Get("/", controllers.SupplierRequestList(requestsService, logg))
				r.Post("/{id}/decline", controllers.SupplierRequestDecline(requestsService, logg))
			})
			r.Route("/v1/quotations", func(r chi.Router) {
				r.Post("/", controllers.QuotationSubmit(quotationsService, logg))
				r.Get("/", controllers.QuotationListMine(quotationsService, logg))
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(enums.RoleAdmin.String(), logg))

			r.Get("/admin/ping", controllers.AdminPing())
			r.Route("/v1/admin/requests", func(r chi.Router) {
				r.Get("/", controllers.AdminRequestQueue(requestsService, logg))
				r.Post("/{id}/approve", controllers.AdminRequestApprove(requestsService, logg))
				r.Post("/{id}/reject", controllers.AdminRequestReject(requestsService, logg))
			})
			r.Route("/v1/admin/supplier-requests", func(r chi.Router) {
				r.Get("/", controllers.AdminSupplierRequestQueue(requestsService, logg))
				r.Get("/{id}/quotations", controllers.AdminQuotationListForRequest(quotationsService, logg))
			})
			r.Post("/v1/admin/quotations/{id}/accept", controllers.AdminQuotationAccept(quotationsService, logg))
			r.Route("/v1/admin/orders", func(r chi.Router) {
				r.Get("/", controllers.AdminFinalOrderList(quotationsService, logg))
				r.Get("/{id}", controllers.FinalOrderGet(quotationsService, logg))
			})
			r.Post("/v1/automation/send-to-supplier", controllers.AutomationSendToSupplier(automationForwarder, logg))
		})
	})

	return r
}
