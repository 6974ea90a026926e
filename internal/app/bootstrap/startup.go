// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	userstore "github.com/iglesiacentral/gruposhub/internal/app/store/users"
	"github.com/iglesiacentral/gruposhub/internal/app/system/auth"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. It
// initializes the session store and creates the bootstrap admin account
// when configured.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	secure := coreCfg.Env == "prod"
	if err := auth.InitSessionStore(appCfg.SessionKey, appCfg.SessionDomain, secure, logger); err != nil {
		return err
	}

	users := userstore.New(deps.MongoDatabase)
	return users.EnsureAdmin(ctx, logger, appCfg.AdminName, appCfg.AdminEmail, appCfg.AdminPassword)
}
