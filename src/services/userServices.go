package services

import (
	"errors"
	"time"

	"github.com/MuseoAndino/Catalogue-Backend/src/middleware"
	"github.com/MuseoAndino/Catalogue-Backend/src/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

// NewUserService creates a new instance of UserService
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// CreateUser registers a new user with a hashed password and the profile
// metadata from the signup form.
func (s *UserService) CreateUser(signup *models.SignupRequest) (*models.UserModel, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(signup.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.UserModel{
		Username:    signup.Username,
		Password:    string(hashedPassword),
		FullName:    signup.FullName,
		Institution: signup.Institution,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByID retrieves a user record by its ID
func (s *UserService) GetUserByID(id int) (*models.UserModel, error) {
	var user models.UserModel
	result := s.db.First(&user, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

// UpdateProfile applies the non-nil profile fields to the user.
func (s *UserService) UpdateProfile(id int, update *models.ProfileUpdateRequest) (*models.UserModel, error) {
	var user models.UserModel
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if update.FullName != nil {
		fields["full_name"] = *update.FullName
	}
	if update.Institution != nil {
		fields["institution"] = *update.Institution
	}
	if len(fields) > 0 {
		if err := s.db.Model(&user).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return &user, nil
}

// AuthenticateUser checks user credentials and returns a JWT token if valid
func (s *UserService) AuthenticateUser(username, password string) (string, error) {
	var user models.UserModel
	result := s.db.Where("username = ?", username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", errors.New("invalid username or password")
		}
		return "", result.Error
	}

	// Compare the provided password with the hashed password in the database
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", errors.New("invalid username or password")
	}

	claims := jwt.MapClaims{
		"id":    user.Id,
		"admin": user.Admin,
		"exp":   time.Now().Add(time.Hour * 12).Unix(), // Token expires in 12 hours
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(middleware.GetSecretKey()))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetPreferences retrieves the user's preferences, creating a defaults row
// on first read.
func (s *UserService) GetPreferences(userID int) (*models.UserPreferenceModel, error) {
	var prefs models.UserPreferenceModel
	err := s.db.Where("user_id = ?", userID).First(&prefs).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		prefs = models.UserPreferenceModel{
			UserID:             userID,
			DefaultLanguage:    "en",
			PreferredViewMode:  models.ViewModeGrid,
			EmailNotifications: true,
			ResearchAreas:      models.StringList{},
			CreatedAt:          time.Now(),
			UpdatedAt:          time.Now(),
		}
		if err := s.db.Create(&prefs).Error; err != nil {
			return nil, err
		}
		return &prefs, nil
	}
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

// UpdatePreferences replaces the user's preference values.
func (s *UserService) UpdatePreferences(userID int, updated *models.UserPreferenceModel) (*models.UserPreferenceModel, error) {
	prefs, err := s.GetPreferences(userID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"default_language":    updated.DefaultLanguage,
		"preferred_view_mode": updated.PreferredViewMode,
		"email_notifications": updated.EmailNotifications,
		"research_areas":      updated.ResearchAreas,
		"updated_at":          time.Now(),
	}
	if err := s.db.Model(prefs).Updates(fields).Error; err != nil {
		return nil, err
	}

	var refreshed models.UserPreferenceModel
	if err := s.db.First(&refreshed, prefs.ID).Error; err != nil {
		return nil, err
	}
	return &refreshed, nil
}
