package handler

import (
	"net/http"
	"time"

	"tyzox-be/internal/auth"
	"tyzox-be/internal/handler/dto"
	"tyzox-be/internal/user"
	"tyzox-be/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	BaseHandler
	users        user.Service
	tokenTTL     time.Duration
	secureCookie bool
}

func NewAuthHandler(users user.Service, tokenTTL time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{users: users, tokenTTL: tokenTTL, secureCookie: secureCookie}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.bindJSON(c, &req) {
		return
	}

	u, err := h.users.Register(c.Request.Context(), req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, dto.UserResponse{ID: u.ID, Email: u.Email})
}

// Login returns the token in the body and also sets it as an HttpOnly cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.bindJSON(c, &req) {
		return
	}

	token, u, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.AccessTokenCookie, token, int(h.tokenTTL.Seconds()), "/", "", h.secureCookie, true)

	h.Success(c, dto.LoginResponse{Token: token, User: user.ToResponse(u)})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.AccessTokenCookie, "", -1, "/", "", h.secureCookie, true)
	h.NoContent(c)
}

func (h *AuthHandler) Me(c *gin.Context) {
	id, ok := h.currentUser(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	h.Success(c, dto.UserResponse{
		ID:    id,
		Email: utils.GetUserEmailFromContext(ctx),
		Role:  utils.GetUserRoleFromContext(ctx),
	})
}
