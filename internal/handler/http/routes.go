package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/smart-plant-guard/internal/rbac"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	router.Get("/health", h.health)
	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/auth", func(r chi.Router) {
		// routes without authorization
		r.Post("/register", h.register)
		r.Post("/login", h.login)

		r.Group(func(r chi.Router) {
			r.Use(h.auth, h.accountStatus)
			r.Post("/mfa/verify", h.verifyMFA)
			r.Post("/mfa/resend", h.resendMFA)
			r.Get("/me", h.me)
			r.Post("/logout", h.logout)
		})
	})

	router.Route("/api/public", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(h.require(rbac.RequireTableView(rbac.TableSpecies, rbac.ScopePublic)))
			r.Get("/species", h.listSpeciesPublic)
			r.Get("/species/{id}", h.getSpeciesPublic)
		})
		r.Group(func(r chi.Router) {
			r.Use(h.require(rbac.RequireTableView(rbac.TablePlantObservations, rbac.ScopePublic)))
			r.Get("/observations", h.listObservationsPublic)
			r.Get("/observations/{id}", h.getObservationPublic)
		})
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.accountStatus, h.requireMFA)

		r.Route("/api/species", func(r chi.Router) {
			r.With(h.require(rbac.RequirePermission(rbac.PermSpeciesManage))).Post("/", h.createSpecies)

			r.Group(func(r chi.Router) {
				r.Use(h.require(rbac.RequireTableView(rbac.TableSpecies, rbac.ScopeFull)))
				r.Get("/", h.listSpeciesFull)
				r.Get("/{id}", h.getSpeciesFull)
			})
		})

		r.Route("/api/plant-observations", func(r chi.Router) {
			r.With(h.require(rbac.RequirePermission(rbac.PermObservationsRecord))).Post("/", h.recordObservation)

			r.Group(func(r chi.Router) {
				r.Use(h.require(rbac.RequireTableView(rbac.TablePlantObservations, rbac.ScopeFull)))
				r.Get("/", h.listObservationsFull)
				r.Get("/{id}", h.getObservationFull)
			})
		})

		r.Route("/api/sensors", func(r chi.Router) {
			r.Use(h.require(rbac.RequireTableView(rbac.TableSensorDevices, rbac.ScopeFull)))
			r.Use(h.require(rbac.RequireTableView(rbac.TableSensorReadings, rbac.ScopeFull)))
			r.Get("/", h.listSensors)
			r.Get("/{id}", h.getSensor)
		})

		r.Route("/api/ai-results", func(r chi.Router) {
			r.Use(h.require(rbac.RequireTableView(rbac.TableAIResults, rbac.ScopeFull)))
			r.Get("/", h.listAIResults)
			r.Get("/{id}", h.getAIResult)
			r.Get("/observation/{id}", h.listAIResultsByObservation)
		})

		r.Route("/api/admin", func(r chi.Router) {
			r.Use(h.require(rbac.RequireAdminActive))

			r.With(h.require(rbac.RequireTableView(rbac.TableRoles, rbac.ScopeFull))).Get("/roles", h.listRoles)

			r.Group(func(r chi.Router) {
				r.Use(h.require(rbac.RequireTableView(rbac.TableUsers, rbac.ScopeFull)))
				r.Get("/users", h.listUsers)
				r.Get("/users/{id}", h.getUser)
			})

			r.With(h.require(rbac.RequirePermission(rbac.PermAccountActivation))).Patch("/users/{id}/active", h.setUserActive)
			r.With(h.require(rbac.RequirePermission(rbac.PermRolesAssign))).Patch("/users/{id}/role", h.setUserRole)
		})
	})

	return router
}
