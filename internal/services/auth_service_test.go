package services

import (
	"testing"
	"time"

	"github.com/internet-kid/notes-api/internal/auth"
	"github.com/internet-kid/notes-api/internal/models"
	"github.com/internet-kid/notes-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// AuthServiceTestSuite defines the test suite for AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *AuthService
}

// SetupTest runs before each test
func (suite *AuthServiceTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.User{})
	suite.Require().NoError(err)

	tokens := auth.NewTokenManager([]byte("test-secret"), 30*time.Minute, 7*24*time.Hour)
	suite.service = NewAuthService(repository.NewUserRepository(suite.db), tokens)
}

// TearDownTest runs after each test
func (suite *AuthServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *AuthServiceTestSuite) register(username, password string) *models.User {
	user, err := suite.service.Register(RegisterInput{
		Username:  username,
		Password:  password,
		Email:     username + "@example.com",
		FirstName: "Test",
	})
	suite.Require().NoError(err)
	return user
}

// TestRegister_Success tests successful registration
func (suite *AuthServiceTestSuite) TestRegister_Success() {
	user := suite.register("alice", "secretpassword")

	assert.NotZero(suite.T(), user.ID)
	assert.Equal(suite.T(), "alice", user.Username)

	// Password must be stored hashed
	assert.NotEqual(suite.T(), "secretpassword", user.PasswordHash)
	err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secretpassword"))
	assert.NoError(suite.T(), err)
}

// TestRegister_DuplicateUsername tests registration with a taken username
func (suite *AuthServiceTestSuite) TestRegister_DuplicateUsername() {
	suite.register("alice", "secretpassword")

	_, err := suite.service.Register(RegisterInput{
		Username: "alice",
		Password: "anotherpassword",
		Email:    "other@example.com",
	})
	assert.ErrorIs(suite.T(), err, ErrUsernameTaken)
}

// TestRegister_ShortPassword tests registration with a password below the minimum
func (suite *AuthServiceTestSuite) TestRegister_ShortPassword() {
	_, err := suite.service.Register(RegisterInput{
		Username: "alice",
		Password: "short",
	})
	assert.ErrorIs(suite.T(), err, ErrPasswordTooShort)
}

// TestLogin_Success tests login and refresh token persistence
func (suite *AuthServiceTestSuite) TestLogin_Success() {
	registered := suite.register("alice", "secretpassword")

	user, pair, err := suite.service.Login(LoginInput{
		Username: "alice",
		Password: "secretpassword",
	})
	suite.Require().NoError(err)

	assert.Equal(suite.T(), registered.ID, user.ID)
	assert.NotEmpty(suite.T(), pair.AccessToken)
	assert.NotEmpty(suite.T(), pair.RefreshToken)

	// Refresh token must be persisted on the user row
	var stored models.User
	err = suite.db.First(&stored, registered.ID).Error
	suite.Require().NoError(err)
	assert.Equal(suite.T(), pair.RefreshToken, stored.RefreshToken)
}

// TestLogin_WrongPassword tests login with a bad password
func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	suite.register("alice", "secretpassword")

	_, _, err := suite.service.Login(LoginInput{
		Username: "alice",
		Password: "wrongpassword",
	})
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)
}

// TestLogin_UnknownUser tests login for a user that does not exist
func (suite *AuthServiceTestSuite) TestLogin_UnknownUser() {
	_, _, err := suite.service.Login(LoginInput{
		Username: "ghost",
		Password: "secretpassword",
	})
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)
}

// TestRefresh_Success tests exchanging a refresh token for a new access token
func (suite *AuthServiceTestSuite) TestRefresh_Success() {
	suite.register("alice", "secretpassword")
	_, pair, err := suite.service.Login(LoginInput{Username: "alice", Password: "secretpassword"})
	suite.Require().NoError(err)

	accessToken, err := suite.service.Refresh(pair.RefreshToken)
	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), accessToken)
}

// TestRefresh_UnknownToken tests refreshing with a token nobody holds
func (suite *AuthServiceTestSuite) TestRefresh_UnknownToken() {
	_, err := suite.service.Refresh("not-a-stored-token")
	assert.ErrorIs(suite.T(), err, ErrInvalidRefreshToken)
}

// TestLogout_RevokesRefreshToken tests that logout invalidates the refresh token
func (suite *AuthServiceTestSuite) TestLogout_RevokesRefreshToken() {
	suite.register("alice", "secretpassword")
	_, pair, err := suite.service.Login(LoginInput{Username: "alice", Password: "secretpassword"})
	suite.Require().NoError(err)

	err = suite.service.Logout(pair.RefreshToken)
	assert.NoError(suite.T(), err)

	// Token must no longer be usable
	_, err = suite.service.Refresh(pair.RefreshToken)
	assert.ErrorIs(suite.T(), err, ErrInvalidRefreshToken)
}

// TestUpdateProfile_UsernameTaken tests renaming to an existing username
func (suite *AuthServiceTestSuite) TestUpdateProfile_UsernameTaken() {
	suite.register("alice", "secretpassword")
	bob := suite.register("bob", "secretpassword")

	_, err := suite.service.UpdateProfile(bob.ID, UpdateProfileInput{
		Username:  "alice",
		Email:     bob.Email,
		FirstName: bob.FirstName,
	})
	assert.ErrorIs(suite.T(), err, ErrUsernameTaken)
}

// TestUpdatePassword_Success tests changing the password
func (suite *AuthServiceTestSuite) TestUpdatePassword_Success() {
	user := suite.register("alice", "secretpassword")

	err := suite.service.UpdatePassword(user.ID, "newlongpassword")
	assert.NoError(suite.T(), err)

	// Old password no longer works, new one does
	_, _, err = suite.service.Login(LoginInput{Username: "alice", Password: "secretpassword"})
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)

	_, _, err = suite.service.Login(LoginInput{Username: "alice", Password: "newlongpassword"})
	assert.NoError(suite.T(), err)
}

// TestSuite runs the test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
