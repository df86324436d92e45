package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cankurt/commune/internal/app/models/dto"
	"github.com/cankurt/commune/internal/app/services"
	"github.com/cankurt/commune/internal/middleware"
)

// AuthController handles signup, signin and profile retrieval
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// SignUp handles user registration
// @Summary Register a new user
// @Description Creates a user account and returns the profile with an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignUpRequest true "Signup payload"
// @Success 201 {object} dto.APIResponse "User created"
// @Failure 400 {object} dto.ErrorResponse "Validation failed or email taken"
// @Router /auth/signup [post]
func (c *AuthController) SignUp(ctx *gin.Context) {
	var req dto.SignUpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	user, accessToken, err := c.authService.SignUp(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMetaResponse(dto.AuthMeta{AccessToken: accessToken}, user))
}

// SignIn handles user authentication
// @Summary Sign in
// @Description Authenticates by email and password and returns an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignInRequest true "Signin payload"
// @Success 200 {object} dto.APIResponse "Authenticated"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/signin [post]
func (c *AuthController) SignIn(ctx *gin.Context) {
	var req dto.SignInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	user, accessToken, err := c.authService.SignIn(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMetaResponse(dto.AuthMeta{AccessToken: accessToken}, user))
}

// Me returns the authenticated user's profile
// @Summary Current user
// @Description Returns the profile of the token's owner
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Profile"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	user, err := c.authService.Me(ctx, ctx.GetString("userID"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(user))
}
