// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"portal/config"
	"portal/internal/delivery/http/middleware"
	"portal/internal/delivery/http/router/handler"
	"portal/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config              *config.Config
	UserHandler         *handler.UserHandler
	ConversationHandler *handler.ConversationHandler
	MessageHandler      *handler.MessageHandler
	NotificationHandler *handler.NotificationHandler
	WSHandler           *handler.WSHandler
	TestHandler         *handler.TestHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg                 *config.Config
	userHandler         *handler.UserHandler
	conversationHandler *handler.ConversationHandler
	messageHandler      *handler.MessageHandler
	notificationHandler *handler.NotificationHandler
	wsHandler           *handler.WSHandler
	testHandler         *handler.TestHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:                 params.Config,
		userHandler:         params.UserHandler,
		conversationHandler: params.ConversationHandler,
		messageHandler:      params.MessageHandler,
		notificationHandler: params.NotificationHandler,
		wsHandler:           params.WSHandler,
		testHandler:         params.TestHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Websocket endpoint; the handler performs its own token check because
	// browsers cannot set headers on websocket upgrade requests.
	e.GET("/ws", r.wsHandler.Serve)

	// User routes that require authentication
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.GET("/me", r.userHandler.GetProfile)
		userGroup.PUT("/me/preferences", r.userHandler.UpdatePreferences)
		userGroup.POST("/me/push-subscriptions", r.userHandler.RegisterPushSubscription)
		userGroup.DELETE("/me/push-subscriptions", r.userHandler.UnregisterPushSubscription)

		// Approval decisions require the program-wide admin role
		userGroup.POST("/:id/approval", r.userHandler.SetApproval,
			r.authMiddleware.RequireRole(entity.RoleAdmin.String()))
	}

	// Conversation routes
	conversationGroup := e.Group("/conversations")
	conversationGroup.Use(r.authMiddleware.Authenticate)
	{
		conversationGroup.POST("", r.conversationHandler.CreateGroup)
		conversationGroup.POST("/direct", r.conversationHandler.GetOrCreateDirect)
		conversationGroup.GET("", r.conversationHandler.List)
		conversationGroup.GET("/:id", r.conversationHandler.Get)
		conversationGroup.POST("/:id/members", r.conversationHandler.AddMember)
		conversationGroup.DELETE("/:id/members/:userID", r.conversationHandler.RemoveMember)
		conversationGroup.PUT("/:id/settings", r.conversationHandler.UpdateMemberSettings)
		conversationGroup.POST("/:id/archive", r.conversationHandler.Archive)
		conversationGroup.GET("/:id/invite-qr", r.conversationHandler.GenerateInviteQR)
		conversationGroup.POST("/join", r.conversationHandler.JoinByInvite)

		// Messages live under their conversation
		conversationGroup.POST("/:id/messages", r.messageHandler.Send)
		conversationGroup.GET("/:id/messages", r.messageHandler.List)
	}

	// Message routes addressed by message ID
	messageGroup := e.Group("/messages")
	messageGroup.Use(r.authMiddleware.Authenticate)
	{
		messageGroup.POST("/:id/read", r.messageHandler.MarkRead)
		messageGroup.POST("/:id/reactions", r.messageHandler.React)
	}

	// Attachment download
	attachmentGroup := e.Group("/attachments")
	attachmentGroup.Use(r.authMiddleware.Authenticate)
	{
		attachmentGroup.GET("/:id", r.messageHandler.GetAttachment)
	}

	// Notification feed routes
	notificationGroup := e.Group("/notifications")
	notificationGroup.Use(r.authMiddleware.Authenticate)
	{
		notificationGroup.GET("", r.notificationHandler.List)
		notificationGroup.GET("/unread-count", r.notificationHandler.UnreadCount)
		notificationGroup.POST("/:id/read", r.notificationHandler.MarkRead)
		notificationGroup.POST("/read-all", r.notificationHandler.MarkAllRead)
	}

	// Test routes for middleware validation, enabled per environment
	if r.cfg.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		{
			testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
		}
	}
}
