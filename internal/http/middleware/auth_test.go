// README: Auth middleware tests with a stubbed token verifier.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"rotaclick/internal/infra"
)

type stubVerifier struct {
	token *infra.FirebaseToken
	err   error
}

func (s stubVerifier) VerifyIDToken(ctx context.Context, idToken string) (*infra.FirebaseToken, error) {
	return s.token, s.err
}

func authTestRouter(verifier infra.TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", Auth(verifier), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": CallerUID(c), "role": CallerRole(c)})
	})
	return r
}

func TestAuth_MissingHeader(t *testing.T) {
	r := authTestRouter(stubVerifier{token: &infra.FirebaseToken{UID: "u1"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuth_NonBearerScheme(t *testing.T) {
	r := authTestRouter(stubVerifier{token: &infra.FirebaseToken{UID: "u1"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Basic abc123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	r := authTestRouter(stubVerifier{err: errors.New("token expired")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuth_ValidTokenExposesCaller(t *testing.T) {
	r := authTestRouter(stubVerifier{token: &infra.FirebaseToken{
		UID:    "carrier-42",
		Claims: map[string]interface{}{"role": "admin"},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if body != `{"role":"admin","uid":"carrier-42"}` {
		t.Fatalf("body = %s", body)
	}
}

func TestAuth_RoleClaimAbsent(t *testing.T) {
	r := authTestRouter(stubVerifier{token: &infra.FirebaseToken{UID: "carrier-7"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := w.Body.String(); body != `{"role":"","uid":"carrier-7"}` {
		t.Fatalf("body = %s", body)
	}
}
