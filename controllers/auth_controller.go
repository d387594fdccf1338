package controllers

import (
	"errors"
	"net/http"

	"github.com/vReis72/nutri-vita-plan-sub000/middlewares"
	"github.com/vReis72/nutri-vita-plan-sub000/services"

	"github.com/gin-gonic/gin"
)

type SignupInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Code     string `json:"code"` // invitation code, optional
}

func Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.RegisterUser(input.Email, input.Password, input.Name, input.Code)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvitationInvalid):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	// auto-login after signup
	token, _, err := services.AuthenticateUser(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusCreated, gin.H{"message": "registration successful"})
		return
	}

	profile, err := services.ResolveProfile(user.ID)
	if err != nil {
		c.JSON(http.StatusCreated, gin.H{"message": "registration successful", "token": token})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token":    token,
		"role":     profile.Role,
		"redirect": middlewares.RoleHome(profile.Role),
	})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := services.AuthenticateUser(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	profile, err := services.ResolveProfile(user.ID)
	if err != nil {
		// Credentials were fine; the client keeps the token and shows
		// a retry state instead of an auth error.
		c.JSON(http.StatusOK, gin.H{"token": token})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"role":     profile.Role,
		"redirect": middlewares.RoleHome(profile.Role),
	})
}

func Refresh(c *gin.Context) {
	userID := c.GetUint("userID")

	token, err := services.RefreshToken(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session", "redirect": "/login"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout is stateless on the server; the client drops its token.
func Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// VerifyInvitation is the public pre-signup check behind /signup?code=.
// One answer fits not-found, used and expired alike.
func VerifyInvitation(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
		return
	}

	invitation, err := services.VerifyInvitation(code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "invalid or expired invitation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"role":  invitation.Role,
		"email": invitation.Email,
	})
}
