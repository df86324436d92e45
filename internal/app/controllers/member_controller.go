package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cankurt/commune/internal/app/models/dto"
	"github.com/cankurt/commune/internal/app/services"
	"github.com/cankurt/commune/internal/middleware"
)

// MemberController handles membership mutations
type MemberController struct {
	memberService services.MemberService
}

// NewMemberController creates a new MemberController
func NewMemberController(memberService services.MemberService) *MemberController {
	return &MemberController{memberService: memberService}
}

// AddMember handles adding a user to a community
// @Summary Add a member
// @Description Adds a user to a community under a role. Only the community owner may do this.
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddMemberRequest true "Membership payload"
// @Success 201 {object} dto.APIResponse "Member added"
// @Failure 400 {object} dto.ErrorResponse "Validation failed or duplicate membership"
// @Failure 403 {object} dto.ErrorResponse "Caller is not the community owner"
// @Failure 404 {object} dto.ErrorResponse "Community, role or user not found"
// @Router /member [post]
func (c *MemberController) AddMember(ctx *gin.Context) {
	var req dto.AddMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	member, err := c.memberService.AddMember(ctx, ctx.GetString("userID"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(member))
}

// RemoveMember handles removing a membership record
// @Summary Remove a member
// @Description Deletes a membership record. The caller must hold Community Admin or Community Moderator in that community, or own it.
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 200 {object} dto.APIResponse "Member removed"
// @Failure 403 {object} dto.ErrorResponse "Caller lacks a qualifying role in this community"
// @Failure 404 {object} dto.ErrorResponse "Member not found"
// @Router /member/{id} [delete]
func (c *MemberController) RemoveMember(ctx *gin.Context) {
	if err := c.memberService.RemoveMember(ctx, ctx.GetString("userID"), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStatusResponse())
}
