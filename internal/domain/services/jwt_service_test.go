package services

import (
	"testing"

	"uztk-http-service/internal/domain/models"
	"uztk-http-service/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAccount(t *testing.T, svc InterfaceUserService, username, password string, isAdmin bool) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Password: password,
		Name:     "Test Account",
		IsAdmin:  isAdmin,
	}
	require.NoError(t, svc.CreateUser(user))
	return user
}

func TestGenerateAndExtractClaims(t *testing.T) {
	db := newTestDB(t)
	svc := NewJWTService(testConfig(), db)

	token, err := svc.GenerateToken(42, "admin", "boss")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ExtractClaims(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "boss", claims.Username)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	db := newTestDB(t)
	svc := NewJWTService(testConfig(), db)

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	db := newTestDB(t)
	svc := NewJWTService(testConfig(), db)

	otherCfg := testConfig()
	otherCfg.JWTSecretKey = "another-secret"
	other := NewJWTService(otherCfg, db)

	token, err := other.GenerateToken(1, "user", "guard01")
	require.NoError(t, err)

	_, err = svc.ExtractClaims(token)
	assert.Error(t, err)
}

func TestLoginSuccessAsAdmin(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	userSvc := NewUserService(db, cfg)
	svc := NewJWTService(cfg, db)

	account := seedAccount(t, userSvc, "boss", "secret123", true)

	result, err := svc.Login("boss", "secret123")
	require.NoError(t, err)
	assert.Equal(t, account.ID, result.UserID)
	assert.Equal(t, "admin", result.Role)
	assert.True(t, result.IsAdmin)
	assert.NotEmpty(t, result.Token)

	claims, err := svc.ExtractClaims(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginSuccessAsRegularUser(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	userSvc := NewUserService(db, cfg)
	svc := NewJWTService(cfg, db)

	seedAccount(t, userSvc, "guard01", "secret123", false)

	result, err := svc.Login("guard01", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "user", result.Role)
	assert.False(t, result.IsAdmin)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	userSvc := NewUserService(db, cfg)
	svc := NewJWTService(cfg, db)

	seedAccount(t, userSvc, "guard01", "secret123", false)

	_, err := svc.Login("guard01", "wrong-password")
	assert.Error(t, err)

	_, err = svc.Login("nobody", "secret123")
	assert.Error(t, err)

	// the two failures are indistinguishable to the caller
	_, errA := svc.Login("guard01", "wrong-password")
	_, errB := svc.Login("nobody", "secret123")
	assert.Equal(t, errA.Error(), errB.Error())
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("secret123", hash))
	assert.False(t, utils.CheckPasswordHash("secret124", hash))
}
