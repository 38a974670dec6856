package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "quarry/internal/interfaces/http/handlers/ticket"
	"quarry/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler        *tickethandlers.TicketHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/api/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	tickets.Use(config.PermissionMiddleware.Authorize())
	{
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		// Sub-resource routes must be registered before the bare /:id
		// routes to avoid gin wildcard conflicts.
		tickets.PUT("/:id/status", config.TicketHandler.ChangeStatus)
		tickets.PUT("/:id/assignees", config.TicketHandler.AssignTicket)
		tickets.GET("/:id/history", config.TicketHandler.ListHistory)
		tickets.GET("/:id/dependencies", config.TicketHandler.ListDependencies)
		tickets.POST("/:id/dependencies", config.TicketHandler.AddDependency)
		tickets.DELETE("/:id/dependencies/:dependency_id", config.TicketHandler.RemoveDependency)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PUT("/:id", config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id", config.TicketHandler.DeleteTicket)
	}
}
