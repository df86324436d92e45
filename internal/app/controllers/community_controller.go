package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cankurt/commune/internal/app/models/dto"
	"github.com/cankurt/commune/internal/app/services"
	"github.com/cankurt/commune/internal/middleware"
	"github.com/cankurt/commune/internal/pkg/helpers"
)

// CommunityController handles community related operations
type CommunityController struct {
	communityService services.CommunityService
}

// NewCommunityController creates a new CommunityController
func NewCommunityController(communityService services.CommunityService) *CommunityController {
	return &CommunityController{communityService: communityService}
}

// CreateCommunity handles community creation
// @Summary Create a community
// @Description Creates a community owned by the caller. The owner is enrolled as Community Admin in the same transaction.
// @Tags communities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCommunityRequest true "Community payload"
// @Success 201 {object} dto.APIResponse "Community created"
// @Failure 400 {object} dto.ErrorResponse "Validation failed or slug taken"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /community [post]
func (c *CommunityController) CreateCommunity(ctx *gin.Context) {
	var req dto.CreateCommunityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	community, err := c.communityService.CreateCommunity(ctx, ctx.GetString("userID"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(community))
}

// GetAllCommunities handles listing all communities
// @Summary List communities
// @Description Retrieves a page of communities with their owners expanded
// @Tags communities
// @Produce json
// @Param page query int false "Page number (1-based)" default(1) minimum(1)
// @Success 200 {object} dto.APIResponse "Communities"
// @Router /community [get]
func (c *CommunityController) GetAllCommunities(ctx *gin.Context) {
	page := helpers.ParsePageParam(ctx)

	meta, communities, err := c.communityService.GetAllCommunities(ctx, page)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPagedResponse(meta, communities))
}

// GetCommunityMembers handles listing a community's members
// @Summary List community members
// @Description Retrieves a page of membership records for a community
// @Tags communities
// @Produce json
// @Param id path string true "Community ID"
// @Param page query int false "Page number (1-based)" default(1) minimum(1)
// @Success 200 {object} dto.APIResponse "Members"
// @Failure 404 {object} dto.ErrorResponse "Community not found"
// @Router /community/{id}/members [get]
func (c *CommunityController) GetCommunityMembers(ctx *gin.Context) {
	page := helpers.ParsePageParam(ctx)

	meta, members, err := c.communityService.GetCommunityMembers(ctx, ctx.Param("id"), page)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPagedResponse(meta, members))
}

// GetOwnedCommunities handles listing the caller's own communities
// @Summary List owned communities
// @Description Retrieves a page of communities the caller owns
// @Tags communities
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)" default(1) minimum(1)
// @Success 200 {object} dto.APIResponse "Communities"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /community/me/owner [get]
func (c *CommunityController) GetOwnedCommunities(ctx *gin.Context) {
	page := helpers.ParsePageParam(ctx)

	meta, communities, err := c.communityService.GetOwnedCommunities(ctx, ctx.GetString("userID"), page)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPagedResponse(meta, communities))
}

// GetJoinedCommunities handles listing communities the caller joined
// @Summary List joined communities
// @Description Retrieves a page of communities the caller is a member of
// @Tags communities
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)" default(1) minimum(1)
// @Success 200 {object} dto.APIResponse "Communities"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /community/me/member [get]
func (c *CommunityController) GetJoinedCommunities(ctx *gin.Context) {
	page := helpers.ParsePageParam(ctx)

	meta, communities, err := c.communityService.GetJoinedCommunities(ctx, ctx.GetString("userID"), page)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPagedResponse(meta, communities))
}
