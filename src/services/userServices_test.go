package services

import (
	"testing"

	"github.com/MuseoAndino/Catalogue-Backend/src/middleware"
	"github.com/MuseoAndino/Catalogue-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signupFixture() *models.SignupRequest {
	return &models.SignupRequest{
		Username:    "aquispe",
		Password:    "textiles",
		FullName:    "Dr. Ana Quispe",
		Institution: "UNMSM",
	}
}

func TestCreateUserHashesPassword(t *testing.T) {
	service := NewUserService(openTestDB(t))

	user, err := service.CreateUser(signupFixture())
	require.NoError(t, err)

	assert.NotEqual(t, "textiles", user.Password)
	assert.Equal(t, "Dr. Ana Quispe", user.FullName)
	assert.Equal(t, "UNMSM", user.Institution)
}

func TestAuthenticateUser(t *testing.T) {
	middleware.SetSecretKey("test-secret")
	service := NewUserService(openTestDB(t))

	_, err := service.CreateUser(signupFixture())
	require.NoError(t, err)

	token, err := service.AuthenticateUser("aquispe", "textiles")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = service.AuthenticateUser("aquispe", "wrong")
	assert.Error(t, err)
	_, err = service.AuthenticateUser("nobody", "textiles")
	assert.Error(t, err)
}

func TestUpdateProfileAppliesOnlyProvidedFields(t *testing.T) {
	service := NewUserService(openTestDB(t))
	user, err := service.CreateUser(signupFixture())
	require.NoError(t, err)

	institution := "PUCP"
	_, err = service.UpdateProfile(user.Id, &models.ProfileUpdateRequest{Institution: &institution})
	require.NoError(t, err)

	updated, err := service.GetUserByID(user.Id)
	require.NoError(t, err)
	assert.Equal(t, "PUCP", updated.Institution)
	assert.Equal(t, "Dr. Ana Quispe", updated.FullName)
}

func TestGetPreferencesCreatesDefaults(t *testing.T) {
	service := NewUserService(openTestDB(t))

	prefs, err := service.GetPreferences(7)
	require.NoError(t, err)

	assert.Equal(t, "en", prefs.DefaultLanguage)
	assert.Equal(t, models.ViewModeGrid, prefs.PreferredViewMode)
	assert.True(t, prefs.EmailNotifications)
	assert.Empty(t, prefs.ResearchAreas)

	// second read returns the same row, not a new one
	again, err := service.GetPreferences(7)
	require.NoError(t, err)
	assert.Equal(t, prefs.ID, again.ID)
}

func TestUpdatePreferences(t *testing.T) {
	service := NewUserService(openTestDB(t))

	updated, err := service.UpdatePreferences(7, &models.UserPreferenceModel{
		DefaultLanguage:    "es",
		PreferredViewMode:  models.ViewModeList,
		EmailNotifications: false,
		ResearchAreas:      models.StringList{"Paracas textiles"},
	})
	require.NoError(t, err)
	assert.Equal(t, "es", updated.DefaultLanguage)

	prefs, err := service.GetPreferences(7)
	require.NoError(t, err)
	assert.Equal(t, models.ViewModeList, prefs.PreferredViewMode)
	assert.False(t, prefs.EmailNotifications)
	assert.Equal(t, models.StringList{"Paracas textiles"}, prefs.ResearchAreas)
}
