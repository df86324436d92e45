package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cankurt/commune/internal/app/models/dto"
	"github.com/cankurt/commune/internal/app/services"
	"github.com/cankurt/commune/internal/middleware"
	"github.com/cankurt/commune/internal/pkg/helpers"
)

// RoleController handles role registry operations
type RoleController struct {
	roleService services.RoleService
}

// NewRoleController creates a new RoleController
func NewRoleController(roleService services.RoleService) *RoleController {
	return &RoleController{roleService: roleService}
}

// CreateRole handles role creation
// @Summary Create a role
// @Description Creates a named role. Role names are unique across the system.
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRoleRequest true "Role payload"
// @Success 201 {object} dto.APIResponse "Role created"
// @Failure 400 {object} dto.ErrorResponse "Validation failed or name taken"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /role [post]
func (c *RoleController) CreateRole(ctx *gin.Context) {
	var req dto.CreateRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	role, err := c.roleService.CreateRole(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(role))
}

// GetAllRoles handles listing roles
// @Summary List roles
// @Description Retrieves a page of roles
// @Tags roles
// @Produce json
// @Param page query int false "Page number (1-based)" default(1) minimum(1)
// @Success 200 {object} dto.APIResponse "Roles"
// @Router /role [get]
func (c *RoleController) GetAllRoles(ctx *gin.Context) {
	page := helpers.ParsePageParam(ctx)

	meta, roles, err := c.roleService.GetAllRoles(ctx, page)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPagedResponse(meta, roles))
}
