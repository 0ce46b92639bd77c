package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/soyedarif/ralph-s-crafts-server/auth"
	"github.com/soyedarif/ralph-s-crafts-server/models"
	"github.com/soyedarif/ralph-s-crafts-server/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func tokenFor(t *testing.T, tokens *auth.TokenService, email string) string {
	t.Helper()
	token, err := tokens.Issue(map[string]interface{}{"email": email})
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return token
}

func get(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	r := gin.New()
	r.GET("/protected", AuthRequired(tokens), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(UserEmailKey))
	})

	if w := get(r, "/protected", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("missing header: expected 401, got %d", w.Code)
	}
	if w := get(r, "/protected", "Basic abc"); w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong scheme: expected 401, got %d", w.Code)
	}
	if w := get(r, "/protected", "Bearer garbage"); w.Code != http.StatusUnauthorized {
		t.Fatalf("invalid token: expected 401, got %d", w.Code)
	}

	w := get(r, "/protected", "Bearer "+tokenFor(t, tokens, "s@x.com"))
	if w.Code != http.StatusOK {
		t.Fatalf("valid token: expected 200, got %d", w.Code)
	}
	if w.Body.String() != "s@x.com" {
		t.Fatalf("expected subject email on context, got %q", w.Body.String())
	}
}

func TestRequireSubjectParam(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	r := gin.New()
	r.GET("/mine/:email", AuthRequired(tokens), RequireSubjectParam("email"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	token := tokenFor(t, tokens, "a@x.com")
	if w := get(r, "/mine/b@x.com", "Bearer "+token); w.Code != http.StatusForbidden {
		t.Fatalf("foreign subject: expected 403, got %d", w.Code)
	}
	if w := get(r, "/mine/a@x.com", "Bearer "+token); w.Code != http.StatusOK {
		t.Fatalf("own subject: expected 200, got %d", w.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	st := store.NewMemory()
	admin := models.User{Name: "Admin", Email: "admin@x.com", Role: models.RoleAdmin}
	student := models.User{Name: "Sam", Email: "s@x.com", Role: models.RoleStudent}
	if err := st.InsertUser(context.Background(), &admin); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	if err := st.InsertUser(context.Background(), &student); err != nil {
		t.Fatalf("seed student: %v", err)
	}

	r := gin.New()
	r.GET("/admin", AuthRequired(tokens), RequireAdmin(st), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	if w := get(r, "/admin", "Bearer "+tokenFor(t, tokens, "s@x.com")); w.Code != http.StatusForbidden {
		t.Fatalf("student: expected 403, got %d", w.Code)
	}
	// Valid token whose subject is not registered at all.
	if w := get(r, "/admin", "Bearer "+tokenFor(t, tokens, "ghost@x.com")); w.Code != http.StatusForbidden {
		t.Fatalf("unknown subject: expected 403, got %d", w.Code)
	}
	if w := get(r, "/admin", "Bearer "+tokenFor(t, tokens, "admin@x.com")); w.Code != http.StatusOK {
		t.Fatalf("admin: expected 200, got %d", w.Code)
	}
}

func TestOptionalAuth(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	r := gin.New()
	r.GET("/open", OptionalAuth(tokens), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(UserEmailKey))
	})

	if w := get(r, "/open", ""); w.Code != http.StatusOK || w.Body.String() != "" {
		t.Fatalf("no token: expected empty 200, got %d %q", w.Code, w.Body.String())
	}
	if w := get(r, "/open", "Bearer garbage"); w.Code != http.StatusOK || w.Body.String() != "" {
		t.Fatalf("bad token: expected empty 200, got %d %q", w.Code, w.Body.String())
	}
	w := get(r, "/open", "Bearer "+tokenFor(t, tokens, "s@x.com"))
	if w.Code != http.StatusOK || w.Body.String() != "s@x.com" {
		t.Fatalf("valid token: expected subject, got %d %q", w.Code, w.Body.String())
	}
}
