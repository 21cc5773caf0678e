package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-post-hub/internal/config"
	"github.com/MKhiriev/go-post-hub/internal/logger"
	"github.com/MKhiriev/go-post-hub/internal/service"
	"github.com/MKhiriev/go-post-hub/internal/store"
	"github.com/MKhiriev/go-post-hub/internal/utils"
	"github.com/MKhiriev/go-post-hub/internal/validators"
	"github.com/MKhiriev/go-post-hub/migrations"
)

var testAppConfig = config.App{
	TokenSignKey:     "test-secret",
	TokenIssuer:      "post-hub",
	TokenDuration:    30 * time.Minute,
	PasswordHashCost: bcrypt.MinCost,
	IdentityField:    config.IdentityFieldLogin,
}

// newUsersServer starts the users service over an in-memory sqlite store.
func newUsersServer(t *testing.T, identityField string) *httptest.Server {
	t.Helper()

	ctx := context.Background()
	db, err := store.NewConnectSQLite(ctx, config.DB{DSN: fmt.Sprintf("file:%s?mode=memory&_foreign_keys=on", t.Name())}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(ctx, migrations.ServiceUsers))

	cfg := testAppConfig
	cfg.IdentityField = identityField

	services, err := service.NewServices(store.NewUserStorages(db, logger.Nop()), cfg, utils.NewRealClock(), logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(NewHandler(services, validators.NewRequestValidator(), cfg, logger.Nop()).Init())
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, target, token, body string) (*http.Response, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, target, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return send(t, req)
}

func doForm(t *testing.T, target string, form url.Values) (*http.Response, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return send(t, req)
}

func send(t *testing.T, req *http.Request) (*http.Response, map[string]any) {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return resp, body
}

func TestUsersService_RegisterLoginProfile(t *testing.T) {
	srv := newUsersServer(t, config.IdentityFieldLogin)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/register", "",
		`{"login":"alice","password":"secret123","email":"alice@x.com"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "alice", body["login"])
	assert.Equal(t, "alice@x.com", body["email"])
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "PasswordHash")
	assert.NotContains(t, body, "username")

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/register", "",
		`{"login":"alice","password":"secret123","email":"other@x.com"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, service.ErrDuplicateLogin.Error(), body["detail"])

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/register", "",
		`{"login":"bob","password":"secret123","email":"alice@x.com"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/login", "", `{"login":"alice","password":"secret123"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["access_token"].(string)
	require.NotEmpty(t, token)
	assert.Equal(t, "bearer", body["token_type"])
	assert.Equal(t, "Bearer "+token, resp.Header.Get("Authorization"))

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/profile", token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "alice", body["login"])
	assert.Nil(t, body["first_name"])

	resp, body = doJSON(t, http.MethodPut, srv.URL+"/users/me", token,
		`{"first_name":"Alice","phone_number":"5551234","birth_date":"1990-04-01"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Alice", body["first_name"])
	assert.Equal(t, "5551234", body["phone_number"])
	assert.Equal(t, "1990-04-01", body["birth_date"])
	assert.Equal(t, "alice@x.com", body["email"])

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/users/me", token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Alice", body["first_name"])
	assert.NotZero(t, body["id"])
}

func TestUsersService_LoginFailures(t *testing.T) {
	srv := newUsersServer(t, config.IdentityFieldLogin)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/register", "",
		`{"login":"alice","password":"secret123","email":"alice@x.com"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "wrong password", body: `{"login":"alice","password":"wrong-pass"}`, wantStatus: http.StatusUnauthorized},
		{name: "unknown login", body: `{"login":"nobody","password":"secret123"}`, wantStatus: http.StatusUnauthorized},
		{name: "missing password", body: `{"login":"alice"}`, wantStatus: http.StatusBadRequest},
		{name: "broken json", body: `{"login":`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doJSON(t, http.MethodPost, srv.URL+"/login", "", tt.body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.NotEmpty(t, body["detail"])
			assert.Empty(t, resp.Header.Get("Authorization"))
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, service.ErrInvalidCredentials.Error(), body["detail"])
				assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
			}
		})
	}
}

func TestUsersService_FormLogin(t *testing.T) {
	srv := newUsersServer(t, config.IdentityFieldLogin)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/register", "",
		`{"login":"alice","password":"secret123","email":"alice@x.com"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	form := url.Values{"username": {"alice"}, "password": {"secret123"}}

	for _, path := range []string{"/login", "/token"} {
		t.Run(path, func(t *testing.T) {
			resp, body := doForm(t, srv.URL+path, form)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.NotEmpty(t, body["access_token"])
			assert.Equal(t, "bearer", body["token_type"])
		})
	}

	t.Run("token rejects JSON", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/token", "", `{"login":"alice","password":"secret123"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("token rejects other grants", func(t *testing.T) {
		resp, _ := doForm(t, srv.URL+"/token", url.Values{
			"grant_type": {"client_credentials"}, "username": {"alice"}, "password": {"secret123"},
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestUsersService_UsernameIdentity(t *testing.T) {
	srv := newUsersServer(t, config.IdentityFieldUsername)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/register", "",
		`{"username":"carol","password":"secret123","email":"carol@x.com"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "carol", body["username"])
	assert.NotContains(t, body, "login")

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/login", "", `{"username":"carol","password":"secret123"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["access_token"].(string)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/profile", token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "carol", body["username"])

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/register", "",
		`{"login":"dave","password":"secret123","email":"dave@x.com"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUsersService_ProfileAuthAndValidation(t *testing.T) {
	srv := newUsersServer(t, config.IdentityFieldLogin)

	for _, body := range []string{
		`{"login":"alice","password":"secret123","email":"alice@x.com"}`,
		`{"login":"bob","password":"secret123","email":"bob@x.com"}`,
	} {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/register", "", body)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}
	_, body := doJSON(t, http.MethodPost, srv.URL+"/login", "", `{"login":"alice","password":"secret123"}`)
	token, _ := body["access_token"].(string)

	tests := []struct {
		name       string
		method     string
		token      string
		body       string
		wantStatus int
	}{
		{name: "no token", method: http.MethodGet, wantStatus: http.StatusUnauthorized},
		{name: "garbage token", method: http.MethodGet, token: "not-a-jwt", wantStatus: http.StatusUnauthorized},
		{name: "digits only phone", method: http.MethodPut, token: token, body: `{"phone_number":"55-12"}`, wantStatus: http.StatusBadRequest},
		{name: "bad email", method: http.MethodPut, token: token, body: `{"email":"nope"}`, wantStatus: http.StatusBadRequest},
		{name: "bad birth date", method: http.MethodPut, token: token, body: `{"birth_date":"01/04/1990"}`, wantStatus: http.StatusBadRequest},
		{name: "email of another user", method: http.MethodPut, token: token, body: `{"email":"bob@x.com"}`, wantStatus: http.StatusConflict},
		{name: "own email again", method: http.MethodPut, token: token, body: `{"email":"alice@x.com"}`, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := doJSON(t, tt.method, srv.URL+"/profile", tt.token, tt.body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestUsersService_HealthAndRouting(t *testing.T) {
	srv := newUsersServer(t, config.IdentityFieldLogin)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/health", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, resp.Header.Get(utils.TraceIDHeader))

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/register", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "POST", resp.Header.Get("Allow"))

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/nowhere", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
