package handlers

import (
	"fmt"
	"net/http"

	"bagages/internal/config"
	"bagages/internal/http/middleware"
	"bagages/internal/services"
	"bagages/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves admin login and logout.
type AuthHandler struct {
	Env config.Env
}

func (h AuthHandler) service(c *gin.Context) services.AuthService {
	return services.AuthService{
		Secret:    h.Env.SecretKey,
		RequestID: middleware.GetRequestID(c),
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /admin/auth
func (h AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	token, admin, err := h.service(c).Login(req.Username, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookie, token, int(services.TokenTTL.Seconds()), "/", "", h.Env.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"admin":   admin,
	})
}

// GET /admin/logout
func (h AuthHandler) Logout(c *gin.Context) {
	username := middleware.AdminUsername(c)
	utils.LogEvent(middleware.GetRequestID(c), "auth", "logout", fmt.Sprintf("username=%s", username))

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.Env.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Déconnexion réussie",
	})
}
