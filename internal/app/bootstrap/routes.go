// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	admincategoriesfeature "github.com/iglesiacentral/gruposhub/internal/app/features/admincategories"
	admindistrictsfeature "github.com/iglesiacentral/gruposhub/internal/app/features/admindistricts"
	admingroupsfeature "github.com/iglesiacentral/gruposhub/internal/app/features/admingroups"
	adminmembersfeature "github.com/iglesiacentral/gruposhub/internal/app/features/adminmembers"
	adminseasonsfeature "github.com/iglesiacentral/gruposhub/internal/app/features/adminseasons"
	catalogfeature "github.com/iglesiacentral/gruposhub/internal/app/features/catalog"
	healthfeature "github.com/iglesiacentral/gruposhub/internal/app/features/health"
	importcsvfeature "github.com/iglesiacentral/gruposhub/internal/app/features/importcsv"
	loginfeature "github.com/iglesiacentral/gruposhub/internal/app/features/login"
	logoutfeature "github.com/iglesiacentral/gruposhub/internal/app/features/logout"
	registerfeature "github.com/iglesiacentral/gruposhub/internal/app/features/register"
	"github.com/iglesiacentral/gruposhub/internal/app/system/auth"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. The public catalog and registration
// routes live under /api; the back office under /admin requires an admin
// session (each admin feature router enforces this itself).
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	r.Use(auth.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Authentication
	loginHandler := &loginfeature.Handler{DB: deps.MongoDatabase, Log: logger}
	r.Mount("/login", loginfeature.Routes(loginHandler))
	logoutHandler := &logoutfeature.Handler{Log: logger}
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	// Public catalog and registration
	catalogHandler := &catalogfeature.Handler{DB: deps.MongoDatabase, Log: logger}
	r.Mount("/api", catalogfeature.Routes(catalogHandler))

	registerHandler := &registerfeature.Handler{DB: deps.MongoDatabase, Log: logger}
	r.Mount("/api/groups/{id}/register", registerfeature.Routes(registerHandler))

	// Back office
	importHandler := &importcsvfeature.Handler{DB: deps.MongoDatabase, Log: logger}
	r.Mount("/admin/import", importcsvfeature.Routes(importHandler))

	groupsHandler := &admingroupsfeature.Handler{DB: deps.MongoDatabase, Log: logger}
	r.Mount("/admin/groups", admingroupsfeature.Routes(groupsHandler))

	categoriesHandler := &admincategoriesfeature.Handler{DB: deps.MongoDatabase, Log: logger}
	r.Mount("/admin/categories", admincategoriesfeature.Routes(categoriesHandler))

	districtsHandler := &admindistrictsfeature.Handler{DB: deps.MongoDatabase, Log: logger}
	r.Mount("/admin/districts", admindistrictsfeature.Routes(districtsHandler))

	seasonsHandler := &adminseasonsfeature.Handler{DB: deps.MongoDatabase, Log: logger}
	r.Mount("/admin/seasons", adminseasonsfeature.Routes(seasonsHandler))

	membersHandler := &adminmembersfeature.Handler{DB: deps.MongoDatabase, Log: logger}
	r.Mount("/admin/groups/{id}/members", adminmembersfeature.RosterRoutes(membersHandler))
	r.Mount("/admin/members", adminmembersfeature.Routes(membersHandler))

	return r, nil
}
