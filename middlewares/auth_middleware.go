// middlewares/auth_middleware.go
package middlewares

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/vReis72/nutri-vita-plan-sub000/models"
	"github.com/vReis72/nutri-vita-plan-sub000/services"
	"github.com/vReis72/nutri-vita-plan-sub000/utils"

	"github.com/gin-gonic/gin"
)

// RoleHome maps a resolved role to the SPA route the gate bounces
// mismatched requests to. Unknown roles fall back to login.
func RoleHome(role string) string {
	switch role {
	case models.RoleNutritionist:
		return "/"
	case models.RolePatient:
		return "/patient/progress"
	case models.RoleAdmin:
		return "/admin/nutritionists"
	}
	return "/login"
}

// SessionMiddleware extracts the bearer token and pins the user id on
// the context. Anything wrong with the token means "no session":
// the answer is always the login redirect, never a server error.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    "authentication required",
				"redirect": "/login",
			})
			return
		}

		userID, err := utils.ParseJWT(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    "invalid session",
				"redirect": "/login",
			})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

// RequireRoles resolves the profile for this request and gates on the
// allowed-role set (all roles when empty). Resolution runs on every
// request; nothing is cached across requests, so a transfer or role
// change is honored on the very next navigation.
func RequireRoles(allowed ...string) gin.HandlerFunc {
	if len(allowed) == 0 {
		allowed = []string{models.RoleNutritionist, models.RolePatient, models.RoleAdmin}
	}

	return func(c *gin.Context) {
		userID := c.GetUint("userID")

		profile, err := services.ResolveProfile(userID)
		if err != nil {
			// Session stays valid; the client shows a retry state
			// instead of bouncing to login.
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error": "profile resolution failed, retry",
			})
			return
		}

		for _, role := range allowed {
			if profile.Role == role {
				c.Set("profile", profile)
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusSeeOther, gin.H{
			"redirect": RoleHome(profile.Role),
		})
	}
}

// RequirePatientOwnership gates nutritionist access to a specific
// patient's sub-resources. A foreign patient answers exactly like a
// missing one: not-found plus the list redirect, so probing ids
// confirms nothing.
func RequirePatientOwnership() gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := CurrentProfile(c)
		if profile == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    "authentication required",
				"redirect": "/login",
			})
			return
		}

		if profile.Role == models.RoleAdmin {
			c.Next()
			return
		}

		patientID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error":    "patient not found",
				"redirect": "/patients",
			})
			return
		}

		nutritionist, err := services.GetNutritionistByProfile(profile.ID)
		if err != nil || !services.IsPatientOfNutritionist(nutritionist.ID, uint(patientID)) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error":    "patient not found",
				"redirect": "/patients",
			})
			return
		}

		c.Next()
	}
}

// CurrentProfile returns the profile resolved by RequireRoles.
func CurrentProfile(c *gin.Context) *models.Profile {
	value, ok := c.Get("profile")
	if !ok {
		return nil
	}
	profile, ok := value.(*models.Profile)
	if !ok {
		return nil
	}
	return profile
}
