package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotel-frontdesk/models"
	"hotel-frontdesk/utils"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type loginPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshPayload struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// Login verifies employee credentials and issues an access/refresh pair.
func (ctrl *AuthController) Login(c *gin.Context) {
	var p loginPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, codeInvalidPayload, "username and password are required")
		return
	}

	var emp models.Employee
	if err := ctrl.DB.Where("username = ?", p.Username).First(&emp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusUnauthorized, "error.invalidCredentials", "invalid username or password")
			return
		}
		RespondServiceError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.Password), []byte(p.Password)); err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "error.invalidCredentials", "invalid username or password")
		return
	}

	access, err := utils.GenerateAccessToken(emp.ID, emp.Username, emp.Role)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	refresh, err := utils.GenerateRefreshToken(emp.ID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	utils.JSONData(c, http.StatusOK, gin.H{
		"accessToken":  access,
		"refreshToken": refresh,
		"employee":     emp,
	})
}

// Refresh exchanges a valid refresh token for a new access token. The
// frontend calls this after a 401 and retries the original request.
func (ctrl *AuthController) Refresh(c *gin.Context) {
	var p refreshPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, codeInvalidPayload, "refreshToken is required")
		return
	}

	claims, err := utils.ValidateToken(p.RefreshToken)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "error.invalidOrExpiredToken", "refresh token is invalid or expired")
		return
	}

	var emp models.Employee
	if err := ctrl.DB.First(&emp, claims.EmployeeID).Error; err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "error.invalidOrExpiredToken", "employee account no longer exists")
		return
	}

	access, err := utils.GenerateAccessToken(emp.ID, emp.Username, emp.Role)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, gin.H{"accessToken": access})
}

// Me returns the authenticated employee.
func (ctrl *AuthController) Me(c *gin.Context) {
	var emp models.Employee
	if err := ctrl.DB.First(&emp, employeeID(c)).Error; err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, emp)
}
