package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/api/http/handlers"
	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/observability"
	"github.com/spec-kit/storefront-service/internal/service"
)

// newRouterApp wires the real middleware and routes. Stores are left nil:
// every request below is answered before a store would be reached.
func newRouterApp(t *testing.T) (*fiber.App, *auth.TokenManager) {
	t.Helper()
	tokens := auth.NewTokenManager("router-secret", time.Hour)
	cookies := auth.NewSessionCookies("", false)
	authService := service.NewAuthService(service.AuthDependencies{Tokens: tokens})
	metrics := observability.NewMetrics("test")

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), metrics, time.Second)
	RegisterRoutes(app, RouteConfig{
		Health:          handlers.NewHealthHandler("storefront", "test", nil),
		AdminAuth:       handlers.NewAdminAuthHandler(authService, cookies),
		Contact:         handlers.NewContactHandler(service.NewContactService(nil, "inbox@shop.test")),
		Orders:          handlers.NewOrdersHandler(service.NewOrderService(nil, nil, nil)),
		JobApplications: handlers.NewJobApplicationsHandler(service.NewJobApplicationService(nil, nil, nil)),
		BankDetails:     handlers.NewBankDetailsHandler(service.NewBankDetailService(nil), nil),
		Payments:        handlers.NewPaymentsHandler(service.NewPaymentService(service.PaymentDependencies{})),
		AuthMiddleware:  auth.NewAuthMiddleware(authService, cookies),
		Metrics:         metrics.Handler(),
	})
	return app, tokens
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	out := map[string]any{}
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode %q: %v", raw, err)
	}
	return out
}

func TestAdminRoutesRequireSession(t *testing.T) {
	app, _ := newRouterApp(t)

	routes := []struct{ method, path string }{
		{http.MethodGet, "/api/admin/orders"},
		{http.MethodGet, "/api/admin/orders/o1"},
		{http.MethodPatch, "/api/admin/orders/o1"},
		{http.MethodDelete, "/api/admin/orders/o1"},
		{http.MethodGet, "/api/admin/job-applications"},
		{http.MethodPatch, "/api/admin/job-applications/a1"},
		{http.MethodDelete, "/api/admin/job-applications/a1"},
		{http.MethodPut, "/api/admin/bank-details"},
	}
	for _, r := range routes {
		t.Run(r.method+" "+r.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(r.method, r.path, nil))
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			if resp.StatusCode != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", resp.StatusCode)
			}
			if body := decode(t, resp); body["code"] != "UNAUTHORIZED" || body["error"] == "" {
				t.Errorf("body = %v", body)
			}
		})
	}
}

func TestAdminRoutesRejectForeignToken(t *testing.T) {
	app, _ := newRouterApp(t)
	foreign, _, err := auth.NewTokenManager("other-secret", time.Hour).Issue(auth.Identity{ID: "1", Role: domain.AdminRoleAdmin})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	req.AddCookie(&http.Cookie{Name: auth.DefaultCookieName, Value: foreign})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestVerifyRouteWithIssuedToken(t *testing.T) {
	app, tokens := newRouterApp(t)
	token, _, err := tokens.Issue(auth.Identity{ID: "admin-1", Email: "owner@shop.test", Role: domain.AdminRoleAdmin})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/auth/verify", nil)
	req.AddCookie(&http.Cookie{Name: auth.DefaultCookieName, Value: token})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	body := decode(t, resp)
	if resp.StatusCode != http.StatusOK || body["authenticated"] != true {
		t.Fatalf("response = %d %v", resp.StatusCode, body)
	}
	if user := body["user"].(map[string]any); user["id"] != "admin-1" {
		t.Errorf("user = %v", user)
	}
}

func TestValidationErrorEnvelope(t *testing.T) {
	app, _ := newRouterApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":"A"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	body := decode(t, resp)
	if body["code"] != "VALIDATION_FAILED" {
		t.Errorf("code = %v", body["code"])
	}
	details, _ := body["details"].(map[string]any)
	if details["email"] == nil || details["message"] == nil || details["name"] != nil {
		t.Errorf("details = %v", details)
	}
}

func TestUnknownRoute(t *testing.T) {
	app, _ := newRouterApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	if body := decode(t, resp); body["code"] != "NOT_FOUND" {
		t.Errorf("body = %v", body)
	}
}

func TestPanicRecovered(t *testing.T) {
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), nil, 0)
	app.Get("/boom", func(*fiber.Ctx) error { panic("boom") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
	if body := decode(t, resp); body["code"] != "INTERNAL_ERROR" {
		t.Errorf("body = %v", body)
	}
}

func TestRequestTimeoutSetsDeadline(t *testing.T) {
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), nil, 50*time.Millisecond)
	app.Get("/deadline", func(c *fiber.Ctx) error {
		if _, ok := c.UserContext().Deadline(); !ok {
			t.Error("user context has no deadline")
		}
		return c.SendStatus(http.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/deadline", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.StatusCode)
	}
}
