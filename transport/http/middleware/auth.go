package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"

	"pms/config"
	"pms/infras/jwt"
	"pms/infras/otel"
	authService "pms/internal/domains/auth/service"
	"pms/permissions"
	"pms/shared/constant"
	"pms/shared/failure"
	"pms/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type ctxKey string

const skipAuth ctxKey = "skip"

const (
	bypassUserID = "dev-bypass"
	bypassEmail  = "dev@localhost"
)

type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

type Role interface {
	RBAC(http.Handler) http.Handler
}

type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	auth       authService.Auth
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, auth authService.Auth, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		auth:       auth,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

// identity is what the downstream handlers read back from the request context.
type identity struct {
	userID  string
	email   string
	role    string
	tokenID string
	claims  *jwt.Claims
}

func (i identity) into(ctx context.Context) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, i.userID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, i.role)

	if i.email != constant.Empty {
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, i.email)
	}

	if i.tokenID != constant.Empty {
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, i.tokenID)
	}

	if i.claims != nil && i.claims.ExpiresAt != nil {
		ctx = context.WithValue(ctx, constant.ContextKeyTokenExpiry, i.claims.ExpiresAt.Time)
	}

	return ctx
}

type route struct {
	pattern    string
	permission permissions.Permission
	known      bool
}

// resolve finds the chi pattern for the request and its permission entry. An empty
// pattern means no route matched and the router will answer 404/405 itself.
func (m *authRoleImpl) resolve(request *http.Request) route {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return route{}
	}

	pattern := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
	if pattern == constant.Empty || m.permission == nil {
		return route{pattern: pattern}
	}

	permission, known := m.permission.FindPermissions(pattern, request.Method)

	return route{pattern: pattern, permission: permission, known: known}
}

func skipped(ctx context.Context) bool {
	skip, _ := ctx.Value(skipAuth).(bool)

	return skip
}

func tokenMessage(err error) string {
	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return "Token has expired"
	case errors.Is(err, jwt.ErrInvalidClaim):
		return "Invalid token claims"
	default:
		return "Invalid token"
	}
}

// authenticate turns the bearer header into an identity, consulting the revocation list.
func (m *authRoleImpl) authenticate(ctx context.Context, header string) (identity, error) {
	raw, err := jwt.ExtractTokenFromHeader(header)
	if err != nil {
		return identity{}, failure.Unauthorized(err.Error())
	}

	claims, err := m.jwtService.ValidateToken(raw, jwt.AccessToken)
	if err != nil {
		return identity{}, failure.Unauthorized(tokenMessage(err))
	}

	if claims.UserID == constant.Empty || claims.Email == constant.Empty {
		log.Error().Str("token_id", claims.TokenID).Msg("access token without subject")

		return identity{}, failure.Unauthorized("Invalid token claims")
	}

	revoked, err := m.auth.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		log.Warn().Err(err).Msg("revocation list unreachable")

		return identity{}, failure.ServiceUnavailable("authentication service unavailable")
	}

	if revoked {
		return identity{}, failure.Unauthorized("Token has been revoked")
	}

	return identity{
		userID:  claims.UserID,
		email:   claims.Email,
		role:    claims.Role,
		tokenID: claims.TokenID,
		claims:  claims,
	}, nil
}

// Auth validates the bearer access token and loads its claims into the request context.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()

		if skipped(ctx) {
			next.ServeHTTP(writer, request)

			return
		}

		target := m.resolve(request)
		if target.permission.Skip {
			next.ServeHTTP(writer, request)

			return
		}

		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"http.route":  target.pattern,
			"http.method": request.Method,
		})

		if m.cfg.AuthBypassEnabled() {
			log.Debug().Str("route", target.pattern).Msg("auth bypass enabled, acting as development admin")

			dev := identity{userID: bypassUserID, email: bypassEmail, role: constant.RoleAdmin}
			next.ServeHTTP(writer, request.WithContext(dev.into(ctx)))

			return
		}

		who, err := m.authenticate(ctx, request.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		scope.SetAttribute("user.role", who.role)
		next.ServeHTTP(writer, request.WithContext(who.into(ctx)))
	})
}

// RBAC checks the caller's role against the embedded permission table. Matched routes
// missing from the table are refused. Requires Auth to have run.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()

		if skipped(ctx) || (m.permission != nil && m.permission.Skip) {
			next.ServeHTTP(writer, request)

			return
		}

		target := m.resolve(request)
		if target.pattern == constant.Empty || target.permission.Skip {
			next.ServeHTTP(writer, request)

			return
		}

		role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

		if target.known && target.permission.Allows(role) {
			next.ServeHTTP(writer, request)

			return
		}

		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "rbac.middleware")
		defer scope.End()

		reason := "role_not_allowed"
		if !target.known {
			reason = "route_not_listed"
		}

		scope.SetAttributes(map[string]any{
			"user.role":     role,
			"allowed_roles": target.permission.Permissions,
			"reason":        reason,
		})
		scope.TraceError(failure.ForbiddenError)
		response.WithError(writer, failure.ForbiddenError)
	})
}

// APIKey lets internal callers holding the service key skip user authentication.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		presented := request.Header.Get(constant.RequestHeaderAPIKey)
		if presented == constant.Empty {
			next.ServeHTTP(writer, request)

			return
		}

		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		expected := m.cfg.App.APIKey
		if expected == constant.Empty || subtle.ConstantTimeCompare([]byte(presented), []byte(expected)) != 1 {
			scope.TraceError(failure.ForbiddenError)
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		system := identity{userID: constant.ContextSystem, role: constant.RoleAdmin}
		ctx = context.WithValue(system.into(ctx), skipAuth, true)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
