package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	tokenService services.TokenServiceInterface
	e            *echo.Echo
	user         *models.User
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.tokenService = services.NewTokenService(&config.JWTConfig{
		Secret:        []byte("0123456789abcdef0123456789abcdef"),
		TokenDuration: time.Hour,
		Issuer:        "fintrack",
	})
	s.e = echo.New()
	s.user = &models.User{ID: uuid.New(), Username: "alice"}
}

func (s *AuthMiddlewareSuite) invoke(authHeader string) (echo.Context, *httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	handler := RequireAuth(s.tokenService)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, rec, handler(c)
}

func (s *AuthMiddlewareSuite) TestValidTokenSetsUserContext() {
	token, _, err := s.tokenService.GenerateToken(s.user)
	s.Require().NoError(err)

	c, rec, handlerErr := s.invoke("Bearer " + token)
	s.Require().NoError(handlerErr)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(s.user.ID.String(), c.Get("user_id"))
	s.Equal("alice", c.Get("username"))
}

func (s *AuthMiddlewareSuite) TestMissingHeader() {
	_, rec, err := s.invoke("")
	s.Require().NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_002")
}

func (s *AuthMiddlewareSuite) TestWrongScheme() {
	_, rec, err := s.invoke("Basic abc123")
	s.Require().NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_004")
}

func (s *AuthMiddlewareSuite) TestGarbageToken() {
	_, rec, err := s.invoke("Bearer not.a.token")
	s.Require().NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_004")
}

func (s *AuthMiddlewareSuite) TestExpiredToken() {
	expiredService := services.NewTokenService(&config.JWTConfig{
		Secret:        []byte("0123456789abcdef0123456789abcdef"),
		TokenDuration: -time.Hour,
		Issuer:        "fintrack",
	})
	token, _, err := expiredService.GenerateToken(s.user)
	s.Require().NoError(err)

	_, rec, handlerErr := s.invoke("Bearer " + token)
	s.Require().NoError(handlerErr)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_003")
}
