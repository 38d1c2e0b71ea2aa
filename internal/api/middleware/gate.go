package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/trystore/kiosk-platform/internal/models"
)

// Admin routes the gate cares about.
const (
	AdminPrefix     = "/admin"
	DashboardRoute  = "/admin"
	LoginRoute      = "/admin/login"
	RegisterRoute   = "/admin/register"
	OnboardingRoute = "/admin/onboarding"
)

// GateStatus is the session snapshot a routing decision is made from.
type GateStatus struct {
	Authenticated bool
	HasShop       bool
	ShopOnboarded bool
}

func (s GateStatus) fullyOnboarded() bool {
	return s.Authenticated && s.HasShop && s.ShopOnboarded
}

type RouteDecision struct {
	Allow      bool
	RedirectTo string
}

func allow() RouteDecision {
	return RouteDecision{Allow: true}
}

func redirectTo(target string) RouteDecision {
	return RouteDecision{RedirectTo: target}
}

func isPublicRoute(path string) bool {
	return path == LoginRoute || path == RegisterRoute
}

// DecideRoute evaluates the admin routing rules for one request. It is a
// pure function: all session state arrives in status, and the only output
// is allow-or-redirect. Paths outside the admin prefix are always allowed.
//
// Precedence: public routes bounce authenticated users to where they
// belong; everything else requires a session, and a session without a
// fully onboarded shop is funneled to the onboarding route.
func DecideRoute(path string, status GateStatus) RouteDecision {
	if !strings.HasPrefix(path, AdminPrefix) {
		return allow()
	}

	if isPublicRoute(path) {
		switch {
		case status.fullyOnboarded():
			return redirectTo(DashboardRoute)
		case status.Authenticated:
			return redirectTo(OnboardingRoute)
		default:
			return allow()
		}
	}

	if !status.Authenticated {
		return redirectTo(LoginRoute)
	}

	// The onboarding route stays reachable for every authenticated user;
	// a fully onboarded one is bounced back out by the wizard itself.
	if path == OnboardingRoute {
		return allow()
	}

	if !status.fullyOnboarded() {
		return redirectTo(OnboardingRoute)
	}

	return allow()
}

// StatusResolver looks up the onboarding status for a session. The gate
// never writes through it.
type StatusResolver interface {
	GetOnboardingStatus(ctx context.Context, userID uuid.UUID) (*models.OnboardingStatus, error)
}

type Gate struct {
	auth     *AuthMiddleware
	resolver StatusResolver
}

func NewGate(auth *AuthMiddleware, resolver StatusResolver) *Gate {
	return &Gate{auth: auth, resolver: resolver}
}

// Protect runs the routing decision before the wrapped handler. It must
// wrap every admin-prefixed page route, ahead of any data loading.
func (g *Gate) Protect(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		status := GateStatus{}

		claims := g.auth.ParseClaims(r)
		if claims != nil {
			status.Authenticated = true

			onboarding, err := g.resolver.GetOnboardingStatus(r.Context(), claims.UserID)
			if err != nil {
				// An unreadable status is treated as not-onboarded; the
				// user lands on onboarding rather than an error page.
				logger.Error("Onboarding status lookup failed",
					slog.String("userId", claims.UserID.String()),
					slog.String("error", err.Error()))
			} else {
				status.HasShop = onboarding.HasShop
				status.ShopOnboarded = onboarding.IsOnboarded
			}
		}

		decision := DecideRoute(r.URL.Path, status)
		if !decision.Allow {
			logger.Info("Route gated",
				slog.String("path", r.URL.Path),
				slog.String("redirect_to", decision.RedirectTo))
			http.Redirect(w, r, decision.RedirectTo, http.StatusSeeOther)
			return
		}

		ctx := r.Context()
		if claims != nil {
			ctx = context.WithValue(ctx, UserContextKey, claims)
			ctx = context.WithValue(ctx, LoggerKey, logger.With(slog.String("userId", claims.UserID.String())))
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}
