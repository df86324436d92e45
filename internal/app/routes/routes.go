package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cankurt/commune/internal/app/controllers"
	"github.com/cankurt/commune/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	communityController *controllers.CommunityController,
	roleController *controllers.RoleController,
	memberController *controllers.MemberController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", authController.SignUp)
		auth.POST("/signin", authController.SignIn)
	}

	// Public listings
	v1.GET("/community", communityController.GetAllCommunities)
	v1.GET("/community/:id/members", communityController.GetCommunityMembers)
	v1.GET("/role", roleController.GetAllRoles)

	// Everything else requires a valid token
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.RequireAuth())
	{
		authenticated.GET("/auth/me", authController.Me)

		community := authenticated.Group("/community")
		{
			community.POST("", communityController.CreateCommunity)
			community.GET("/me/owner", communityController.GetOwnedCommunities)
			community.GET("/me/member", communityController.GetJoinedCommunities)
		}

		authenticated.POST("/role", roleController.CreateRole)

		member := authenticated.Group("/member")
		{
			member.POST("", memberController.AddMember)
			member.DELETE("/:id", memberController.RemoveMember)
		}
	}
}
