package delivery

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"agenda-backend/internal/auth/domain"
	"agenda-backend/internal/auth/repository"
	"agenda-backend/internal/auth/usecase"
	"agenda-backend/pkg/config"
	"agenda-backend/pkg/httperr"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	httperr.UseJSONFieldNames()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Usuario{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	cfg := &config.Config{JWTSecret: "test-secret", JWTAccessExpiry: time.Minute}
	uc := usecase.NewAuthUsecase(repository.NewUserRepository(db), cfg)
	h := NewAuthHandler(uc)

	r := gin.New()
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/me", AuthMiddleware(uc), h.Me)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body, bearer string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

const registerAna = `{"nombre_usuario":"ana","correo":"ana@example.com","contraseña":"secreta1"}`

func TestRegister_ReturnsUserWithoutPassword(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/register", registerAna, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["nombre_usuario"] != "ana" || body["correo"] != "ana@example.com" {
		t.Fatalf("unexpected body: %v", body)
	}
	if _, leaked := body["contraseña"]; leaked {
		t.Fatalf("password leaked in response: %v", body)
	}
	if strings.Contains(w.Body.String(), "secreta1") {
		t.Fatalf("plaintext password in response: %s", w.Body.String())
	}
}

func TestRegister_DuplicateCorreo_409(t *testing.T) {
	r := newTestRouter(t)

	doRequest(t, r, http.MethodPost, "/register", registerAna, "")

	w := doRequest(t, r, http.MethodPost, "/register",
		`{"nombre_usuario":"otra","correo":"ana@example.com","contraseña":"secreta2"}`, "")
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRegister_InvalidEmail_422(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/register",
		`{"nombre_usuario":"ana","correo":"no-es-un-correo","contraseña":"secreta1"}`, "")
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	fields, ok := body["fields"].(map[string]any)
	if !ok || fields["correo"] == nil {
		t.Fatalf("expected per-field detail for correo, got %v", body)
	}
}

func TestLogin_ReturnsBearerToken(t *testing.T) {
	r := newTestRouter(t)

	doRequest(t, r, http.MethodPost, "/register", registerAna, "")

	w := doRequest(t, r, http.MethodPost, "/login",
		`{"correo":"ana@example.com","contraseña":"secreta1"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["token_type"] != "bearer" {
		t.Fatalf("expected token_type bearer, got %v", body)
	}
	token, _ := body["access_token"].(string)
	if token == "" {
		t.Fatalf("expected access_token, got %v", body)
	}

	// The issued token opens the protected endpoint.
	w = doRequest(t, r, http.MethodGet, "/me", "", token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from /me, got %d: %s", w.Code, w.Body.String())
	}
	me := decodeBody(t, w)
	if me["nombre_usuario"] != "ana" {
		t.Fatalf("expected ana from /me, got %v", me)
	}
}

func TestLogin_WrongPasswordAndUnknownEmail_Same401(t *testing.T) {
	r := newTestRouter(t)

	doRequest(t, r, http.MethodPost, "/register", registerAna, "")

	wrong := doRequest(t, r, http.MethodPost, "/login",
		`{"correo":"ana@example.com","contraseña":"incorrecta"}`, "")
	unknown := doRequest(t, r, http.MethodPost, "/login",
		`{"correo":"nadie@example.com","contraseña":"secreta1"}`, "")

	if wrong.Code != http.StatusUnauthorized || unknown.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", wrong.Code, unknown.Code)
	}
	if wrong.Body.String() != unknown.Body.String() {
		t.Fatalf("credential failures must be indistinguishable: %s vs %s", wrong.Body.String(), unknown.Body.String())
	}
}

func TestProtectedRoute_RequiresToken(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/me", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	w = doRequest(t, r, http.MethodGet, "/me", "", "not-a-token")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", w.Code)
	}
}
