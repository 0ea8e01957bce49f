package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"uztk-http-service/internal/domain/models"
	"uztk-http-service/internal/domain/services"
	"uztk-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Location{},
		&models.Employee{},
		&models.EmployeeGroup{},
		&models.Camera{},
		&models.TourniquetLock{},
		&models.CameraToTourniquetLock{},
		&models.TourniquetTimeSheet{},
		&models.EmployeeGroupTimeSheet{},
		&models.User{},
	))

	cfg := &config.Config{
		JWTSecretKey:         "test-secret",
		DefaultAdminPassword: "admin123",
	}

	userSvc := services.NewUserService(db, cfg)
	require.NoError(t, userSvc.CreateUser(&models.User{
		Username: "admin", Password: "admin123", Name: "Administrator", IsAdmin: true,
	}))
	require.NoError(t, userSvc.CreateUser(&models.User{
		Username: "guard01", Password: "guard123", Name: "Gate Guard",
	}))

	return SetupRouter(db, cfg), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") != "" {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

func login(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()
	w, env := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	require.NotEmpty(t, result.Token)
	return result.Token
}

func TestPing(t *testing.T) {
	r, _ := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodGet, "/api/ping", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	r, _ := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "admin",
		"password": "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	r, _ := newTestRouter(t)

	// no token
	w, _ := doJSON(t, r, http.MethodGet, "/api/admin/registry", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// guard token is authenticated but not an admin
	guardToken := login(t, r, "guard01", "guard123")
	w, _ = doJSON(t, r, http.MethodGet, "/api/admin/registry", guardToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken := login(t, r, "admin", "admin123")
	w, _ = doJSON(t, r, http.MethodGet, "/api/admin/registry", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLocationAdminCRUD(t *testing.T) {
	r, _ := newTestRouter(t)
	token := login(t, r, "admin", "admin123")

	w, env := doJSON(t, r, http.MethodPost, "/api/admin/locations", token, gin.H{
		"title": "Main Entrance",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Location
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotZero(t, created.ID)
	assert.NotEmpty(t, created.UUID)

	w, env = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/admin/locations/%d", created.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched models.Location
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	assert.Equal(t, "Main Entrance", fetched.Title)

	w, _ = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/admin/locations/%d", created.ID), token, gin.H{
		"title": "Back Entrance",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/admin/locations/%d", created.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/admin/locations/%d?check=deleted", created.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLockCreateDefaultsToTurnstile(t *testing.T) {
	r, _ := newTestRouter(t)
	token := login(t, r, "admin", "admin123")

	w, env := doJSON(t, r, http.MethodPost, "/api/admin/locations", token, gin.H{
		"title": "Entrance",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var location models.Location
	require.NoError(t, json.Unmarshal(env.Data, &location))

	// neither lock_type nor state given: turnstile, closed
	w, env = doJSON(t, r, http.MethodPost, "/api/admin/locks", token, gin.H{
		"location_id": location.ID,
		"ip_address":  "10.0.0.7",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.TourniquetLock
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, models.LockTypeTourniquet, created.LockType)
	assert.Equal(t, models.LockStateClosed, created.State)
}

func TestPublicToggleRedirectsAndFlipsState(t *testing.T) {
	r, db := newTestRouter(t)

	location := &models.Location{Title: "Entrance"}
	require.NoError(t, db.Create(location).Error)
	lock := &models.TourniquetLock{
		LocationID: location.ID,
		LockType:   models.LockTypeTourniquet,
		State:      models.LockStateClosed,
		IPAddress:  "10.0.0.5",
	}
	require.NoError(t, db.Create(lock).Error)

	// redirect query parameter wins
	w, _ := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/locks/%d/toggle?redirect=/panel", lock.ID), "", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/panel", w.Header().Get("Location"))

	var stored models.TourniquetLock
	require.NoError(t, db.First(&stored, lock.ID).Error)
	assert.Equal(t, models.LockStateOpened, stored.State)

	// falls back to the Referer header
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/locks/%d/toggle", lock.ID), nil)
	req.Header.Set("Referer", "/panel/back")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/panel/back", rec.Header().Get("Location"))

	// neither present: plain JSON with the new state
	w, env := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/locks/%d/toggle", lock.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var toggled models.TourniquetLock
	require.NoError(t, json.Unmarshal(env.Data, &toggled))
	assert.Equal(t, models.LockStateOpened, toggled.State)
}

func TestPublicToggleUnknownLock(t *testing.T) {
	r, _ := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodGet, "/api/locks/9999/toggle?redirect=/panel", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserMeEndpoints(t *testing.T) {
	r, db := newTestRouter(t)
	token := login(t, r, "guard01", "guard123")

	w, env := doJSON(t, r, http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var detail services.UserDetail
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Equal(t, "guard01", detail.Username)
	assert.NotNil(t, detail.Cameras)
	assert.NotNil(t, detail.Locks)

	w, _ = doJSON(t, r, http.MethodPut, "/api/users/me", token, gin.H{"name": "Night Guard"})
	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.User
	require.NoError(t, db.Where("username = ?", "guard01").First(&stored).Error)
	assert.Equal(t, "Night Guard", stored.Name)

	// redirect endpoint sends the caller to the detail view
	w, _ = doJSON(t, r, http.MethodGet, "/api/users/redirect", token, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/api/users/me", w.Header().Get("Location"))
}
