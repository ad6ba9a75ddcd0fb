package middleware

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/csrf"
	"github.com/hertz-contrib/sessions"
	"github.com/hertz-contrib/sessions/cookie"

	"FindrHealth/config"
	pkgerrors "FindrHealth/pkg/errors"
	"FindrHealth/pkg/response"
)

// CSRFMiddlewares protects cookie-authenticated browser POSTs. The cookie
// session carries the token salt; clients echo the issued token in the
// X-CSRF-TOKEN header on unsafe methods. Safe methods pass through, so the
// token endpoint can live inside the protected group.
func CSRFMiddlewares() []app.HandlerFunc {
	store := cookie.NewStore([]byte(config.Cfg.CSRFSecret))
	return []app.HandlerFunc{
		sessions.New("csrf-session", store),
		csrf.New(
			csrf.WithSecret(config.Cfg.SessionSecret),
			csrf.WithErrorFunc(func(ctx context.Context, c *app.RequestContext) {
				response.Error(ctx, c, pkgerrors.CSRFTokenInvalid)
				c.Abort()
			}),
		),
	}
}

// CSRFToken returns the token the browser must send back on POSTs.
func CSRFToken(ctx context.Context, c *app.RequestContext) {
	response.Success(ctx, c, map[string]string{"csrf_token": csrf.GetToken(c)})
}
