package server

import (
	"context"
	"net/http"
	"os"

	"github.com/umakantv/go-utils/httpserver"
	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"

	cachepackage "goaltrack-service/cache"
	"goaltrack-service/config"
	"goaltrack-service/database"
	"goaltrack-service/handlers"
	"goaltrack-service/repository"
	"goaltrack-service/services"
)

func StartServer() {
	// Initialize logger
	logger.Init(logger.LoggerConfig{
		CallerKey:  "file",
		TimeKey:    "timestamp",
		CallerSkip: 1,
	})

	logger.Info("Starting Goal Tracker Service...")

	cfg := config.Load()

	// Initialize database
	dbConn := database.InitializeDatabase(cfg.DBPath)
	defer dbConn.Close()

	// Initialize session store
	sessionCache := cachepackage.InitializeCache(cfg.CacheType, cfg.RedisAddr)
	defer sessionCache.Close()
	sessions := handlers.NewSessionManager(sessionCache, cfg.SessionSecret)

	// Wire repositories and services
	userRepo := repository.NewUserRepo(dbConn)
	taskRepo := repository.NewTaskRepo(dbConn)
	goalRepo := repository.NewGoalRepo(dbConn)

	userService := services.NewUserService(userRepo)
	taskService := services.NewTaskService(taskRepo)
	goalService := services.NewGoalService(goalRepo, taskRepo)

	authHandler := handlers.NewAuthHandler(userService, sessions)
	profileHandler := handlers.NewProfileHandler(userService, sessions)
	taskHandler := handlers.NewTaskHandler(taskService)
	goalHandler := handlers.NewGoalHandler(goalService)
	dashboardHandler := handlers.NewDashboardHandler(taskService, goalService)

	// checkAuth validates the session cookie and exposes the session
	// user to handlers through the request auth claims.
	checkAuth := func(r *http.Request) (bool, httpserver.RequestAuth) {
		data, ok := sessions.Lookup(r)
		if !ok {
			return false, httpserver.RequestAuth{}
		}
		email, _ := data["email"].(string)
		return true, httpserver.RequestAuth{
			Type:   "session",
			Client: email,
			Claims: data,
		}
	}

	server := httpserver.New(cfg.Port, checkAuth)

	// Public routes
	server.Register(httpserver.Route{
		Name:     "HealthCheck",
		Method:   "GET",
		Path:     "/health",
		AuthType: "none",
	}, httpserver.HandlerFunc(func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy", "service": "goaltrack-service"}`))
	}))

	server.Register(httpserver.Route{
		Name:     "Register",
		Method:   "POST",
		Path:     "/register",
		AuthType: "none",
	}, httpserver.HandlerFunc(authHandler.Register))

	server.Register(httpserver.Route{
		Name:     "Login",
		Method:   "POST",
		Path:     "/login",
		AuthType: "none",
	}, httpserver.HandlerFunc(authHandler.Login))

	// Session routes
	server.Register(httpserver.Route{
		Name:     "Logout",
		Method:   "POST",
		Path:     "/logout",
		AuthType: "session",
	}, httpserver.HandlerFunc(authHandler.Logout))

	server.Register(httpserver.Route{
		Name:     "Me",
		Method:   "GET",
		Path:     "/me",
		AuthType: "session",
	}, httpserver.HandlerFunc(authHandler.Me))

	server.Register(httpserver.Route{
		Name:     "UpdateProfile",
		Method:   "PUT",
		Path:     "/profile",
		AuthType: "session",
	}, httpserver.HandlerFunc(profileHandler.UpdateProfile))

	server.Register(httpserver.Route{
		Name:     "ChangePassword",
		Method:   "PUT",
		Path:     "/profile/password",
		AuthType: "session",
	}, httpserver.HandlerFunc(profileHandler.ChangePassword))

	server.Register(httpserver.Route{
		Name:     "DeleteAccount",
		Method:   "DELETE",
		Path:     "/account",
		AuthType: "session",
	}, httpserver.HandlerFunc(profileHandler.DeleteAccount))

	server.Register(httpserver.Route{
		Name:     "Dashboard",
		Method:   "GET",
		Path:     "/dashboard",
		AuthType: "session",
	}, httpserver.HandlerFunc(dashboardHandler.Dashboard))

	// Tasks
	server.Register(httpserver.Route{
		Name:     "ListTasks",
		Method:   "GET",
		Path:     "/tasks",
		AuthType: "session",
	}, httpserver.HandlerFunc(taskHandler.List))

	server.Register(httpserver.Route{
		Name:     "CreateTask",
		Method:   "POST",
		Path:     "/tasks",
		AuthType: "session",
	}, httpserver.HandlerFunc(taskHandler.Create))

	server.Register(httpserver.Route{
		Name:     "GetTask",
		Method:   "GET",
		Path:     "/tasks/{id}",
		AuthType: "session",
	}, httpserver.HandlerFunc(taskHandler.Get))

	server.Register(httpserver.Route{
		Name:     "UpdateTask",
		Method:   "PUT",
		Path:     "/tasks/{id}",
		AuthType: "session",
	}, httpserver.HandlerFunc(taskHandler.Update))

	server.Register(httpserver.Route{
		Name:     "CompleteTask",
		Method:   "POST",
		Path:     "/tasks/{id}/complete",
		AuthType: "session",
	}, httpserver.HandlerFunc(taskHandler.Complete))

	server.Register(httpserver.Route{
		Name:     "DeleteTask",
		Method:   "DELETE",
		Path:     "/tasks/{id}",
		AuthType: "session",
	}, httpserver.HandlerFunc(taskHandler.Delete))

	// Goals
	server.Register(httpserver.Route{
		Name:     "ListGoals",
		Method:   "GET",
		Path:     "/goals",
		AuthType: "session",
	}, httpserver.HandlerFunc(goalHandler.List))

	server.Register(httpserver.Route{
		Name:     "CreateGoal",
		Method:   "POST",
		Path:     "/goals",
		AuthType: "session",
	}, httpserver.HandlerFunc(goalHandler.Create))

	server.Register(httpserver.Route{
		Name:     "GetGoal",
		Method:   "GET",
		Path:     "/goals/{id}",
		AuthType: "session",
	}, httpserver.HandlerFunc(goalHandler.Get))

	server.Register(httpserver.Route{
		Name:     "UpdateGoal",
		Method:   "PUT",
		Path:     "/goals/{id}",
		AuthType: "session",
	}, httpserver.HandlerFunc(goalHandler.Update))

	server.Register(httpserver.Route{
		Name:     "ToggleGoal",
		Method:   "POST",
		Path:     "/goals/{id}/complete",
		AuthType: "session",
	}, httpserver.HandlerFunc(goalHandler.Toggle))

	server.Register(httpserver.Route{
		Name:     "DeleteGoal",
		Method:   "DELETE",
		Path:     "/goals/{id}",
		AuthType: "session",
	}, httpserver.HandlerFunc(goalHandler.Delete))

	logger.Info("Goal Tracker Service started", zap.String("port", cfg.Port))
	logger.Info("Health check: GET /health")
	logger.Info("API endpoints: /register /login /tasks /goals /dashboard")

	// Start server
	if err := server.Start(); err != nil {
		logger.Error("Server failed to start", zap.Error(err))
		os.Exit(1)
	}
}
