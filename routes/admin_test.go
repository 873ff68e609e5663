package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// buildTestApp creates a minimal Iris app with an admin-guarded ping route
// and the JWT verifier, no storage behind it.
func buildTestApp() *iris.Application {
	os.Setenv("ACCESS_TOKEN_SECRET", "testsecret")
	app := iris.New()

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} { return new(mockAccessToken) })

	admin := app.Party("/api/admin", accessTokenVerifierMiddleware, mockAdminOnlyMiddleware)
	{
		admin.Get("/ping", func(ctx iris.Context) {
			ctx.JSON(iris.Map{"ok": true})
		})
	}
	app.Build()
	return app
}

type mockAccessToken struct {
	ID   uint
	Role string
}

// mockAdminOnlyMiddleware uses mockAccessToken
func mockAdminOnlyMiddleware(ctx iris.Context) {
	claims := jwt.Get(ctx).(*mockAccessToken)
	if claims.Role != "admin" && claims.Role != "super_admin" {
		ctx.StatusCode(iris.StatusForbidden)
		return
	}
	ctx.Next()
}

// signTestToken returns a signed JWT with the given role
func signTestToken(role string) string {
	signer := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), 0)
	token, _ := signer.Sign(mockAccessToken{ID: 1, Role: role})
	return string(token)
}

func TestAdminRoutesRBAC(t *testing.T) {
	app := buildTestApp()

	// No token
	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code == http.StatusOK {
		t.Fatalf("expected non-200 without token, got %d", resp.Code)
	}

	// User role -> 403
	req2 := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req2.Header.Set("Authorization", "Bearer "+signTestToken("user"))
	resp2 := httptest.NewRecorder()
	app.ServeHTTP(resp2, req2)
	if resp2.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for user role, got %d", resp2.Code)
	}

	// Admin role -> 200
	req3 := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req3.Header.Set("Authorization", "Bearer "+signTestToken("admin"))
	resp3 := httptest.NewRecorder()
	app.ServeHTTP(resp3, req3)
	if resp3.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin role, got %d", resp3.Code)
	}

	// Super admin role -> 200
	req4 := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req4.Header.Set("Authorization", "Bearer "+signTestToken("super_admin"))
	resp4 := httptest.NewRecorder()
	app.ServeHTTP(resp4, req4)
	if resp4.Code != http.StatusOK {
		t.Fatalf("expected 200 for super_admin role, got %d", resp4.Code)
	}
}

func TestGenerateBookingReference(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		ref := GenerateBookingReference()
		if len(ref) != 10 {
			t.Fatalf("expected 10 character reference, got %q", ref)
		}
		if ref[:2] != "GG" {
			t.Fatalf("expected GG prefix, got %q", ref)
		}
		for _, c := range ref[2:] {
			isHex := (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F')
			if !isHex {
				t.Fatalf("expected uppercase hex characters, got %q", ref)
			}
		}
		if seen[ref] {
			t.Fatalf("duplicate reference generated: %q", ref)
		}
		seen[ref] = true
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Costa del Sol Golf Resort":   "costa-del-sol-golf-resort",
		"  St Andrews  Links ":        "st-andrews-links",
		"Belek!! Luxury (Golf Coast)": "belek-luxury-golf-coast",
	}
	for input, want := range cases {
		if got := slugify(input); got != want {
			t.Errorf("slugify(%q) = %q, want %q", input, got, want)
		}
	}
}
