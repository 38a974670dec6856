package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	notificationapp "quarry/internal/application/notification"
	projectusecases "quarry/internal/application/project/usecases"
	ticketusecases "quarry/internal/application/ticket/usecases"
	userusecases "quarry/internal/application/user/usecases"
	workflowusecases "quarry/internal/application/workflow/usecases"
	"quarry/internal/domain/shared/events"
	domainworkflow "quarry/internal/domain/workflow"
	"quarry/internal/infrastructure/auth"
	"quarry/internal/infrastructure/config"
	"quarry/internal/infrastructure/email"
	"quarry/internal/infrastructure/permission"
	"quarry/internal/infrastructure/persistence/seeds"
	"quarry/internal/infrastructure/ratelimit"
	"quarry/internal/infrastructure/repository"
	authhandlers "quarry/internal/interfaces/http/handlers/auth"
	portalhandlers "quarry/internal/interfaces/http/handlers/portal"
	projecthandlers "quarry/internal/interfaces/http/handlers/project"
	tickethandlers "quarry/internal/interfaces/http/handlers/ticket"
	workflowhandlers "quarry/internal/interfaces/http/handlers/workflow"
	"quarry/internal/interfaces/http/middleware"
	"quarry/internal/interfaces/http/routes"
	"quarry/internal/shared/db"
	"quarry/internal/shared/logger"
	"quarry/internal/shared/markdown"
)

// Router assembles the full HTTP surface: repositories, use cases,
// handlers, middleware, and route registration.
type Router struct {
	engine *gin.Engine
	logger logger.Interface
}

// RouterDeps carries the externally managed resources the router wires
// handlers against. RedisClient and EmailSender may be nil; the portal
// rate limiter and email notifications degrade gracefully without them.
type RouterDeps struct {
	Config      *config.Config
	DB          *gorm.DB
	Enforcer    *permission.Enforcer
	Dispatcher  events.EventDispatcher
	RedisClient *redis.Client
	EmailSender email.Sender
}

func NewRouter(deps *RouterDeps) (*Router, error) {
	log := logger.NewLogger()
	cfg := deps.Config

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.Recovery())
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	// Repositories
	ticketRepo := repository.NewTicketRepository(deps.DB)
	historyRepo := repository.NewTicketHistoryRepository(deps.DB)
	dependencyRepo := repository.NewTicketDependencyRepository(deps.DB)
	projectRepo := repository.NewProjectRepository(deps.DB)
	statusRepo := repository.NewStatusRepository(deps.DB)
	priorityRepo := repository.NewPriorityRepository(deps.DB)
	customFieldRepo := repository.NewCustomFieldRepository(deps.DB)
	userRepo := repository.NewUserRepository(deps.DB)
	workflowRepo := repository.NewWorkflowRepository(deps.DB)

	// Shared services
	txManager := db.NewTransactionManager(deps.DB)
	engine2 := domainworkflow.NewEngine()
	markdownService := markdown.NewService()
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	passwordHasher := auth.NewPasswordHasher(cfg.Auth.Password.BcryptCost)
	statusSeeder := seeds.NewDefaultStatusSeeder(deps.DB)

	// Ticket use cases
	createTicketUC := ticketusecases.NewCreateTicketUseCase(
		ticketRepo, historyRepo, projectRepo, statusRepo, priorityRepo,
		customFieldRepo, userRepo, workflowRepo, engine2, txManager,
		deps.Dispatcher, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(
		ticketRepo, priorityRepo, customFieldRepo, userRepo, txManager, deps.Dispatcher, log)
	deleteTicketUC := ticketusecases.NewDeleteTicketUseCase(
		ticketRepo, dependencyRepo, txManager, deps.Dispatcher, log)
	changeStatusUC := ticketusecases.NewChangeStatusUseCase(
		ticketRepo, historyRepo, statusRepo, workflowRepo, engine2,
		txManager, deps.Dispatcher, log)
	assignTicketUC := ticketusecases.NewAssignTicketUseCase(
		ticketRepo, userRepo, txManager, deps.Dispatcher, log)
	addDependencyUC := ticketusecases.NewAddDependencyUseCase(
		ticketRepo, dependencyRepo, txManager, deps.Dispatcher, log)
	removeDependencyUC := ticketusecases.NewRemoveDependencyUseCase(
		dependencyRepo, txManager, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, log)
	listHistoryUC := ticketusecases.NewListHistoryUseCase(ticketRepo, historyRepo, log)
	listDependenciesUC := ticketusecases.NewListDependenciesUseCase(ticketRepo, dependencyRepo, log)

	// Project use cases
	createProjectUC := projectusecases.NewCreateProjectUseCase(projectRepo, statusSeeder, txManager, log)
	updateProjectUC := projectusecases.NewUpdateProjectUseCase(projectRepo, txManager, log)
	deleteProjectUC := projectusecases.NewDeleteProjectUseCase(projectRepo, txManager, log)
	getProjectUC := projectusecases.NewGetProjectUseCase(projectRepo, log)
	listProjectsUC := projectusecases.NewListProjectsUseCase(projectRepo, log)
	createStatusUC := projectusecases.NewCreateStatusUseCase(projectRepo, statusRepo, txManager, log)
	updateStatusUC := projectusecases.NewUpdateStatusUseCase(statusRepo, txManager, log)
	deleteStatusUC := projectusecases.NewDeleteStatusUseCase(statusRepo, txManager, log)
	listStatusesUC := projectusecases.NewListStatusesUseCase(projectRepo, statusRepo, log)
	listPrioritiesUC := projectusecases.NewListPrioritiesUseCase(priorityRepo, log)
	createCustomFieldUC := projectusecases.NewCreateCustomFieldUseCase(projectRepo, customFieldRepo, txManager, log)
	deactivateCustomFieldUC := projectusecases.NewDeactivateCustomFieldUseCase(customFieldRepo, txManager, log)
	listCustomFieldsUC := projectusecases.NewListCustomFieldsUseCase(projectRepo, customFieldRepo, log)

	// Workflow use cases
	upsertWorkflowUC := workflowusecases.NewUpsertWorkflowUseCase(workflowRepo, projectRepo, txManager, log)
	getWorkflowUC := workflowusecases.NewGetWorkflowUseCase(workflowRepo, projectRepo, log)
	deleteWorkflowUC := workflowusecases.NewDeleteWorkflowUseCase(workflowRepo, txManager, log)

	// Auth use case
	loginUC := userusecases.NewLoginUseCase(userRepo, passwordHasher, jwtService, log)

	// Notification subscriber
	if deps.EmailSender != nil && deps.Dispatcher != nil {
		subscriber := notificationapp.NewSubscriber(
			deps.EmailSender, ticketRepo, statusRepo, userRepo,
			cfg.Server.BaseURL, log)
		if err := subscriber.Register(deps.Dispatcher); err != nil {
			return nil, err
		}
	}

	// Handlers
	ticketHandler := tickethandlers.NewTicketHandler(
		createTicketUC, updateTicketUC, deleteTicketUC, changeStatusUC,
		assignTicketUC, addDependencyUC, removeDependencyUC, getTicketUC,
		listTicketsUC, listHistoryUC, listDependenciesUC)
	projectHandler := projecthandlers.NewProjectHandler(
		createProjectUC, updateProjectUC, deleteProjectUC, getProjectUC,
		listProjectsUC, createStatusUC, updateStatusUC, deleteStatusUC,
		listStatusesUC, listPrioritiesUC, createCustomFieldUC,
		deactivateCustomFieldUC, listCustomFieldsUC)
	workflowHandler := workflowhandlers.NewWorkflowHandler(
		upsertWorkflowUC, getWorkflowUC, deleteWorkflowUC)
	authHandler := authhandlers.NewAuthHandler(loginUC)
	portalHandler := portalhandlers.NewPortalHandler(
		getTicketUC, listTicketsUC, listHistoryUC, markdownService)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)
	permissionMiddleware := middleware.NewPermissionMiddleware(deps.Enforcer, log)

	var portalLimiter ratelimit.RateLimiter
	if deps.RedisClient != nil {
		portalLimiter = ratelimit.NewRedisRateLimiter(deps.RedisClient)
	}

	// Routes
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler: authHandler,
	})
	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:        ticketHandler,
		AuthMiddleware:       authMiddleware,
		PermissionMiddleware: permissionMiddleware,
	})
	routes.SetupProjectRoutes(engine, &routes.ProjectRouteConfig{
		ProjectHandler:       projectHandler,
		WorkflowHandler:      workflowHandler,
		AuthMiddleware:       authMiddleware,
		PermissionMiddleware: permissionMiddleware,
	})
	routes.SetupPortalRoutes(engine, &routes.PortalRouteConfig{
		PortalHandler:        portalHandler,
		AuthMiddleware:       authMiddleware,
		PermissionMiddleware: permissionMiddleware,
		RateLimiter:          portalLimiter,
		RequestsPerMinute:    cfg.Portal.RateLimitPerMinute,
		Logger:               log,
	})

	return &Router{engine: engine, logger: log}, nil
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
