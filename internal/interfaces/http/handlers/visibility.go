package handlers

import (
	"github.com/gin-gonic/gin"

	"relnotes/internal/shared/constants"
)

// isStaffRequest reports whether the request carries a verified staff
// identity set by the auth middleware.
func isStaffRequest(c *gin.Context) bool {
	return c.GetString(constants.ContextKeyUserRole) == constants.RoleStaff
}
