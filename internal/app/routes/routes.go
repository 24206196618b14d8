package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kranthik10/campusconnect/internal/app/controllers"
	"github.com/kranthik10/campusconnect/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	userController *controllers.UserController,
	communityController *controllers.CommunityController,
	eventController *controllers.EventController,
	postController *controllers.PostController,
	messageController *controllers.MessageController,
	engagementController *controllers.EngagementController,
	referralController *controllers.ReferralController,
	notificationController *controllers.NotificationController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// User directory and matching
	users := v1.Group("/users")
	{
		users.GET("", userController.SearchUsers)
		users.GET("/:id", userController.GetUser)
		users.GET("/:id/connections", userController.GetConnections)
		users.GET("/:id/matches", userController.GetMatches)

		// Messaging views keyed by user
		users.GET("/:id/messages", messageController.ListMessages)
		users.GET("/:id/conversations", messageController.ListConversations)

		// Engagement ledger keyed by user
		users.GET("/:id/points", engagementController.GetPoints)
		users.POST("/:id/points", engagementController.AddPoints)
		users.GET("/:id/achievements", engagementController.GetUnlocked)
		users.POST("/:id/achievements/:achievementId", engagementController.UnlockAchievement)
		users.GET("/:id/streak", engagementController.GetStreak)
		users.POST("/:id/streak", engagementController.TouchStreak)
		users.POST("/:id/rewards/:rewardId", engagementController.RedeemReward)

		// Referrals keyed by user
		users.GET("/:id/referrals", referralController.ListReferrals)
		users.GET("/:id/referral-link", referralController.GetReferralLink)

		// Notifications keyed by user
		users.GET("/:id/notifications", notificationController.ListNotifications)
	}

	// Communities
	communities := v1.Group("/communities")
	{
		communities.GET("", communityController.GetAllCommunities)
		communities.GET("/:id", communityController.GetCommunityByID)
		communities.POST("/:id/members", communityController.JoinCommunity)
	}

	// Events
	events := v1.Group("/events")
	{
		events.GET("", eventController.GetAllEvents)
		events.GET("/:id", eventController.GetEventByID)
		events.POST("/:id/attendees", eventController.JoinEvent)
	}

	// Feed
	posts := v1.Group("/posts")
	{
		posts.GET("", postController.GetFeed)
		posts.POST("", postController.CreatePost)
		posts.POST("/:id/likes", postController.LikePost)
		posts.POST("/:id/comments", postController.AddComment)
	}

	// Messages
	messages := v1.Group("/messages")
	{
		messages.POST("", messageController.SendMessage)
		messages.POST("/:id/read", messageController.MarkRead)
	}

	// Notifications
	notifications := v1.Group("/notifications")
	{
		notifications.POST("/:id/read", notificationController.MarkRead)
	}

	// Referrals
	referrals := v1.Group("/referrals")
	{
		referrals.POST("", referralController.CreateReferral)
		referrals.POST("/:id/complete", referralController.CompleteReferral)
	}

	// Static catalogs
	v1.GET("/achievements", engagementController.GetAchievementCatalog)
	v1.GET("/rewards", engagementController.ListRewards)
	v1.GET("/interests", userController.ListInterests)
	v1.GET("/colleges", userController.ListColleges)

	// Health check endpoint
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Success: true,
			Data:    gin.H{"status": "ok"},
		})
	})
}
