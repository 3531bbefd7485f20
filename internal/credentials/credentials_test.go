package credentials

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// signJWT builds a real (HS256) token so expiry parsing exercises the same
// path a production ID token takes.
func signJWT(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestTokenSignIn(t *testing.T) {
	var gotKey, gotReferer string
	idToken := signJWT(t, time.Now().Add(time.Hour))

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		gotReferer = r.Header.Get("Referer")
		json.NewEncoder(w).Encode(map[string]string{
			"idToken":   idToken,
			"expiresIn": "3600",
		})
	}))
	defer ts.Close()

	creds := New("app-key", "https://tenant.example", WithSignInURL(ts.URL))
	token, err := creds.Token(context.Background())
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	if token != idToken {
		t.Errorf("token = %q", token)
	}
	if gotKey != "app-key" {
		t.Errorf("key = %q", gotKey)
	}
	if gotReferer != "https://tenant.example" {
		t.Errorf("referer = %q", gotReferer)
	}
}

func TestTokenCachedUntilExpiry(t *testing.T) {
	signIns := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		signIns++
		json.NewEncoder(w).Encode(map[string]string{
			"idToken":   signJWT(t, time.Now().Add(time.Hour)),
			"expiresIn": "3600",
		})
	}))
	defer ts.Close()

	creds := New("app-key", "https://tenant.example", WithSignInURL(ts.URL))
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := creds.Token(ctx); err != nil {
			t.Fatalf("Token call %d: %v", i, err)
		}
	}
	if signIns != 1 {
		t.Errorf("signed in %d times, want 1", signIns)
	}
}

func TestTokenRefreshedNearExpiry(t *testing.T) {
	signIns := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		signIns++
		// Expires inside the refresh skew, so every call re-signs.
		json.NewEncoder(w).Encode(map[string]string{
			"idToken":   signJWT(t, time.Now().Add(10*time.Second)),
			"expiresIn": "10",
		})
	}))
	defer ts.Close()

	creds := New("app-key", "https://tenant.example", WithSignInURL(ts.URL))
	ctx := context.Background()
	creds.Token(ctx)
	creds.Token(ctx)
	if signIns != 2 {
		t.Errorf("signed in %d times, want 2", signIns)
	}
}

func TestTokenSignInFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"message": "API key not valid"}}`))
	}))
	defer ts.Close()

	creds := New("bad-key", "https://tenant.example", WithSignInURL(ts.URL))
	if _, err := creds.Token(context.Background()); err == nil {
		t.Fatal("expected sign-in failure")
	}
}

func TestTokenExpiryFallsBackToExpiresIn(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"idToken":   "not-a-jwt",
			"expiresIn": "3600",
		})
	}))
	defer ts.Close()

	creds := New("app-key", "https://tenant.example", WithSignInURL(ts.URL))
	if _, err := creds.Token(context.Background()); err != nil {
		t.Fatalf("Token: %v", err)
	}
	if remaining := time.Until(creds.expiry); remaining < 59*time.Minute {
		t.Errorf("expiry not derived from expiresIn: %v remaining", remaining)
	}
}
