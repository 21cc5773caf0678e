package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/go-post-hub/internal/adapter"
	"github.com/MKhiriev/go-post-hub/internal/config"
	postsgrpc "github.com/MKhiriev/go-post-hub/internal/handler/grpc"
	usershttp "github.com/MKhiriev/go-post-hub/internal/handler/http"
	"github.com/MKhiriev/go-post-hub/internal/logger"
	"github.com/MKhiriev/go-post-hub/internal/rpc"
	"github.com/MKhiriev/go-post-hub/internal/service"
	"github.com/MKhiriev/go-post-hub/internal/store"
	"github.com/MKhiriev/go-post-hub/internal/utils"
	"github.com/MKhiriev/go-post-hub/internal/validators"
	"github.com/MKhiriev/go-post-hub/migrations"
	"github.com/MKhiriev/go-post-hub/models"
)

var e2eAppConfig = config.App{
	TokenSignKey:     "e2e-secret",
	TokenIssuer:      "post-hub",
	TokenDuration:    30 * time.Minute,
	PasswordHashCost: bcrypt.MinCost,
	IdentityField:    config.IdentityFieldLogin,
}

func openSQLite(t *testing.T, name string, svc migrations.Service) *store.DB {
	t.Helper()

	ctx := context.Background()
	dsn := fmt.Sprintf("file:%s_%s?mode=memory&_foreign_keys=on", strings.ReplaceAll(t.Name(), "/", "_"), name)
	db, err := store.NewConnectSQLite(ctx, config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(ctx, svc))
	return db
}

// startStack runs the users service over HTTP, the posts service over an
// in-memory gRPC listener, and a gateway in front of both.
func startStack(t *testing.T) string {
	t.Helper()

	clock := utils.NewRealClock()
	validator := validators.NewRequestValidator()

	usersServices, err := service.NewServices(store.NewUserStorages(openSQLite(t, "users", migrations.ServiceUsers), logger.Nop()), e2eAppConfig, clock, logger.Nop())
	require.NoError(t, err)
	usersSrv := httptest.NewServer(usershttp.NewHandler(usersServices, validator, e2eAppConfig, logger.Nop()).Init())
	t.Cleanup(usersSrv.Close)

	postsServices, err := service.NewServices(store.NewPostStorages(openSQLite(t, "posts", migrations.ServicePosts), logger.Nop()), config.App{}, clock, logger.Nop())
	require.NoError(t, err)
	postsHandler := postsgrpc.NewHandler(postsServices, validator, logger.Nop())
	lis := bufconn.Listen(1 << 20)
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(postsHandler.UnaryInterceptors()...))
	rpc.RegisterPostsServiceServer(grpcServer, postsHandler)
	go func() { _ = grpcServer.Serve(lis) }()
	t.Cleanup(grpcServer.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	adapterCfg := config.Adapter{UsersAddress: usersSrv.URL, RequestTimeout: 5 * time.Second}
	users, err := adapter.NewUsersHTTPAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	posts := adapter.NewPostsGRPCAdapter(conn, adapterCfg.RequestTimeout, logger.Nop())

	issuer, err := utils.NewTokenIssuer(e2eAppConfig.TokenSignKey, e2eAppConfig.TokenIssuer, e2eAppConfig.TokenDuration, clock)
	require.NoError(t, err)

	gateway := httptest.NewServer(NewHandler(users, posts, issuer, validator, logger.Nop()).Init())
	t.Cleanup(gateway.Close)
	return gateway.URL
}

type apiClient struct {
	t       *testing.T
	baseURL string
	token   string
}

func (c *apiClient) do(method, path, body string) (int, []byte) {
	c.t.Helper()

	req, err := http.NewRequest(method, c.baseURL+path, strings.NewReader(body))
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	var raw json.RawMessage
	_ = json.NewDecoder(resp.Body).Decode(&raw)
	return resp.StatusCode, raw
}

func (c *apiClient) signUp(login string) {
	c.t.Helper()

	status, _ := c.do(http.MethodPost, "/register",
		fmt.Sprintf(`{"login":%q,"password":"secret123","email":"%s@x.com"}`, login, login))
	require.Equal(c.t, http.StatusCreated, status)

	status, body := c.do(http.MethodPost, "/login", fmt.Sprintf(`{"login":%q,"password":"secret123"}`, login))
	require.Equal(c.t, http.StatusOK, status)

	var token models.TokenResponse
	require.NoError(c.t, json.Unmarshal(body, &token))
	c.token = token.AccessToken
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestGateway_AccountScenario(t *testing.T) {
	baseURL := startStack(t)
	alice := &apiClient{t: t, baseURL: baseURL}
	alice.signUp("alice")

	status, body := alice.do(http.MethodGet, "/profile", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "alice", decode[map[string]any](t, body)["login"])

	status, body = alice.do(http.MethodPut, "/users/me", `{"last_name":"Liddell"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Liddell", decode[map[string]any](t, body)["last_name"])

	status, _ = alice.do(http.MethodPost, "/register", `{"login":"alice","password":"secret123","email":"a2@x.com"}`)
	assert.Equal(t, http.StatusConflict, status)

	anonymous := &apiClient{t: t, baseURL: baseURL}
	status, _ = anonymous.do(http.MethodGet, "/profile", "")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestGateway_PostsScenario(t *testing.T) {
	baseURL := startStack(t)

	alice := &apiClient{t: t, baseURL: baseURL}
	alice.signUp("alice")
	bob := &apiClient{t: t, baseURL: baseURL}
	bob.signUp("bob")

	status, body := alice.do(http.MethodPost, "/posts", `{"title":"secret","is_private":true,"tags":[" go ","db","go"]}`)
	require.Equal(t, http.StatusCreated, status)
	private := decode[models.Post](t, body)
	assert.Equal(t, []string{"go", "db"}, private.Tags)
	assert.True(t, private.IsPrivate)

	status, body = alice.do(http.MethodPost, "/posts", `{"title":"public","tags":["go"]}`)
	require.Equal(t, http.StatusCreated, status)
	public := decode[models.Post](t, body)

	// visibility
	status, _ = bob.do(http.MethodGet, fmt.Sprintf("/posts/%d", private.ID), "")
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = bob.do(http.MethodGet, fmt.Sprintf("/posts/%d", public.ID), "")
	assert.Equal(t, http.StatusOK, status)
	status, body = alice.do(http.MethodGet, fmt.Sprintf("/posts/%d", private.ID), "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "secret", decode[models.Post](t, body).Title)

	// only the creator mutates
	status, _ = bob.do(http.MethodPut, fmt.Sprintf("/posts/%d", public.ID), `{"title":"mine now"}`)
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = bob.do(http.MethodDelete, fmt.Sprintf("/posts/%d", public.ID), "")
	assert.Equal(t, http.StatusForbidden, status)

	// partial update keeps the title, replaces the tags
	status, body = alice.do(http.MethodPut, fmt.Sprintf("/posts/%d", private.ID), `{"is_private":false,"tags":["rust"]}`)
	require.Equal(t, http.StatusOK, status)
	updated := decode[models.Post](t, body)
	assert.Equal(t, "secret", updated.Title)
	assert.False(t, updated.IsPrivate)
	assert.Equal(t, []string{"rust"}, updated.Tags)

	// listing is scoped to the caller
	status, body = alice.do(http.MethodGet, "/posts?page=1&page_size=1", "")
	require.Equal(t, http.StatusOK, status)
	page := decode[models.PostPage](t, body)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Items, 1)
	assert.Equal(t, public.ID, page.Items[0].ID)

	status, body = bob.do(http.MethodGet, "/posts", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(0), decode[models.PostPage](t, body).Total)

	// delete, then gone
	status, _ = alice.do(http.MethodDelete, fmt.Sprintf("/posts/%d", public.ID), "")
	assert.Equal(t, http.StatusNoContent, status)
	status, _ = alice.do(http.MethodGet, fmt.Sprintf("/posts/%d", public.ID), "")
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = alice.do(http.MethodDelete, fmt.Sprintf("/posts/%d", public.ID), "")
	assert.Equal(t, http.StatusNotFound, status)

	// unauthenticated
	anonymous := &apiClient{t: t, baseURL: baseURL}
	status, _ = anonymous.do(http.MethodPost, "/posts", `{"title":"x"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
}
