package handler

import (
	"net/http"
	"time"

	"github.com/JoelHidalgo58/myapp-inv2/internal/apierror"
	"github.com/JoelHidalgo58/myapp-inv2/internal/config"
	"github.com/JoelHidalgo58/myapp-inv2/internal/dto"
	"github.com/JoelHidalgo58/myapp-inv2/internal/state"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type AuthHandler struct {
	ctrl *state.Controller
	cfg  *config.Config
}

func NewAuthHandler(ctrl *state.Controller, cfg *config.Config) *AuthHandler {
	return &AuthHandler{ctrl: ctrl, cfg: cfg}
}

// Login opens the single app session. Logging in while another user holds the
// session takes it over; the previous bearer's requests start failing with 401.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	user, err := h.ctrl.IniciarSesion(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}

	expiration := time.Duration(h.cfg.JWTExpirationHours) * time.Hour
	token, err := h.generateToken(user.Username, user.Rol, expiration)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(expiration.Seconds()),
		User:        usuarioToResponse(user),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.ctrl.CerrarSesion()
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) generateToken(username, rol string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"rol":      rol,
		"exp":      time.Now().Add(duration).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}
