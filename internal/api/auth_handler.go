package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wfunc/chain-hunter/internal/service"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Name            string `json:"name" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register 用户注册
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "INVALID_REQUEST",
			"message": "请求参数错误",
		})
		return
	}

	if err := h.authService.Register(c.Request.Context(), req.Name, req.Password, req.ConfirmPassword); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"name": req.Name})
}

// Login 用户登录
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "INVALID_REQUEST",
			"message": "请求参数错误",
		})
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Name, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{
		"token": token,
		"user":  user,
	})
}

// Logout 登出
func (h *AuthHandler) Logout(c *gin.Context) {
	h.authService.Logout(c.Request.Context())
	respondOK(c, gin.H{"message": "已登出"})
}

// Profile 当前用户
func (h *AuthHandler) Profile(c *gin.Context) {
	user, ok := h.authService.CurrentUser()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    "NOT_LOGGED_IN",
			"message": "未登录",
		})
		return
	}
	respondOK(c, user)
}
