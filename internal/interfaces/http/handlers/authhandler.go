package handlers

import (
	"github.com/gin-gonic/gin"

	"relnotes/internal/application/user/usecases"
	"relnotes/internal/shared/constants"
	"relnotes/internal/shared/logger"
	"relnotes/internal/shared/utils"
)

type AuthHandler struct {
	loginUC   usecases.LoginExecutor
	getUserUC usecases.GetUserExecutor
	logger    logger.Interface
}

func NewAuthHandler(loginUC usecases.LoginExecutor, getUserUC usecases.GetUserExecutor) *AuthHandler {
	return &AuthHandler{
		loginUC:   loginUC,
		getUserUC: getUserUC,
		logger:    logger.NewLogger(),
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid login request body", "error", err)
		utils.ErrorResponse(c, 400, "username and password are required")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Login successful", result)
}

// Me returns the account behind the presented access token.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		utils.ErrorResponse(c, 401, "authentication required")
		return
	}

	id, ok := userID.(uint)
	if !ok {
		utils.ErrorResponse(c, 401, "authentication required")
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), usecases.GetUserQuery{ID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "", result)
}
