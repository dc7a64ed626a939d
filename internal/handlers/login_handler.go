package handlers

import (
	"net/http"

	"go-pos-register/internal/metrics"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// --- POST /login ---
func (h *Handlers) Login(c *gin.Context) {
	var input LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	sess, err := h.Sessions.LoginEmployee(input.EmployeeID, input.Password)
	if err != nil {
		fail(c, err)
		return
	}

	metrics.LoginsTotal.WithLabelValues("employee").Inc()
	c.JSON(http.StatusOK, sess)
}

// --- POST /logout ---
// Clears the cashier session only; an admin signed in next door stays
// signed in.
func (h *Handlers) Logout(c *gin.Context) {
	if err := h.Sessions.ClearEmployee(); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// --- GET /session ---
func (h *Handlers) Session(c *gin.Context) {
	sess, err := h.Sessions.Employee()
	if err != nil {
		fail(c, err)
		return
	}
	if sess == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not signed in"})
		return
	}
	c.JSON(http.StatusOK, sess)
}

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --- POST /admin/login ---
func (h *Handlers) AdminLogin(c *gin.Context) {
	var input AdminLoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	sess, err := h.Sessions.LoginAdmin(input.Username, input.Password)
	if err != nil {
		fail(c, err)
		return
	}

	metrics.LoginsTotal.WithLabelValues("admin").Inc()
	c.JSON(http.StatusOK, sess)
}

// --- POST /admin/logout ---
func (h *Handlers) AdminLogout(c *gin.Context) {
	if err := h.Sessions.ClearAdmin(); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// --- GET /admin/session ---
func (h *Handlers) AdminSession(c *gin.Context) {
	sess, err := h.Sessions.Admin()
	if err != nil {
		fail(c, err)
		return
	}
	if sess == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not signed in"})
		return
	}
	c.JSON(http.StatusOK, sess)
}

// --- POST /admin/register ---
// Only mounted when ALLOW_ADMIN_REGISTRATION=true.
func (h *Handlers) AdminRegister(c *gin.Context) {
	if !h.AllowAdminRegistration {
		c.JSON(http.StatusForbidden, gin.H{"error": "Registration is disabled"})
		return
	}

	var input AdminLoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	user, err := h.Sessions.RegisterAdmin(input.Username, input.Password)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Admin account created",
		"id":       user.ID,
		"username": user.Username,
	})
}
