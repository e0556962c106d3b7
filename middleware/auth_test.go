package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	userRepo "freelanceai/database/repository/user"
	"freelanceai/models"
	"freelanceai/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	users map[string]models.User
	calls int
}

func (r *stubUserRepo) Create(_ context.Context, u *models.User) error {
	r.users[u.ID] = *u
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	r.calls++
	u, ok := r.users[id]
	if !ok {
		return nil, userRepo.ErrNotFound
	}
	return &u, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, userRepo.ErrNotFound
}

func (r *stubUserRepo) Update(_ context.Context, u *models.User) error {
	r.users[u.ID] = *u
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func setupAuthRouter(t *testing.T) (*gin.Engine, *stubUserRepo, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	utils.AuthCacheClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = utils.AuthCacheClient.Close()
		utils.AuthCacheClient = nil
	})

	token, err := utils.GenerateToken("u1", "a@b.fr", time.Hour)
	require.NoError(t, err)

	repo := &stubUserRepo{users: map[string]models.User{
		"u1": {ID: "u1", Email: "a@b.fr", TokenHash: utils.HashToken(token)},
	}}

	r := gin.New()
	r.GET("/me", JWTAuth(repo), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.GetString("userID")})
	})
	return r, repo, token
}

func doAuthRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthAccepted(t *testing.T) {
	r, _, token := setupAuthRouter(t)

	w := doAuthRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u1")
}

func TestJWTAuthMissingHeader(t *testing.T) {
	r, _, _ := setupAuthRouter(t)

	assert.Equal(t, http.StatusUnauthorized, doAuthRequest(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doAuthRequest(r, "Token abc").Code)
}

func TestJWTAuthGarbageToken(t *testing.T) {
	r, _, _ := setupAuthRouter(t)

	w := doAuthRequest(r, "Bearer not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthRevokedToken(t *testing.T) {
	r, repo, token := setupAuthRouter(t)

	u := repo.users["u1"]
	u.TokenHash = ""
	repo.users["u1"] = u

	w := doAuthRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthCachesHash(t *testing.T) {
	r, repo, token := setupAuthRouter(t)

	require.Equal(t, http.StatusOK, doAuthRequest(r, "Bearer "+token).Code)
	require.Equal(t, 1, repo.calls)

	// Second request is served from the auth cache.
	require.Equal(t, http.StatusOK, doAuthRequest(r, "Bearer "+token).Code)
	assert.Equal(t, 1, repo.calls)
}

func TestJWTAuthCachedMismatchRejected(t *testing.T) {
	r, _, token := setupAuthRouter(t)

	require.NoError(t, utils.AuthCacheClient.Set(context.Background(),
		utils.AuthCachePrefix+"u1", "stale-hash", time.Hour).Err())

	w := doAuthRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", RateLimit(3), func(c *gin.Context) { c.Status(http.StatusOK) })

	var last int
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		last = w.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)

	// A different client is unaffected.
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.9")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
