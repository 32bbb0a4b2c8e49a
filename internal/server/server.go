package server

import (
	"context"
	"net/http"
	"time"

	"ptgym/internal/auth"
	"ptgym/internal/changeticket"
	"ptgym/internal/config"
	"ptgym/internal/db"
	"ptgym/internal/notification"
	"ptgym/internal/schedule"
	"ptgym/internal/trainer"
	"ptgym/internal/traineruser"
	"ptgym/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router  *gin.Engine
	http    *http.Server
	db      *sqlx.DB
	config  *config.Config
	limiter *RateLimiter
}

func New(database *sqlx.DB, cfg *config.Config, dispatcher notification.Dispatcher) *Server {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	tx := db.NewTransactor(database)

	trainerRepo := trainer.NewRepository(database)
	userRepo := user.NewRepository(database)
	trainerUserRepo := traineruser.NewRepository(database)
	scheduleRepo := schedule.NewRepository(database)
	ticketRepo := changeticket.NewRepository(database)
	tokenRepo := notification.NewTokenRepository(database)

	policy, err := changeticket.ParsePolicy(cfg.TicketUniqueness)
	if err != nil {
		policy = changeticket.PolicyAny
	}

	scheduleService := schedule.NewService(scheduleRepo, trainerRepo, trainerUserRepo, tx, dispatcher, schedule.Options{
		SlotStep: time.Duration(cfg.SlotStepMinutes) * time.Minute,
		Now:      schedule.WallClock(cfg.Location),
	})
	ticketService := changeticket.NewService(ticketRepo, scheduleRepo, scheduleService, tx, dispatcher, policy)

	trainerHandler := trainer.NewHandler(trainer.NewService(trainerRepo, tx))
	userHandler := user.NewHandler(user.NewService(userRepo))
	trainerUserHandler := traineruser.NewHandler(traineruser.NewService(trainerUserRepo, trainerRepo, userRepo))
	scheduleHandler := schedule.NewHandler(scheduleService)
	ticketHandler := changeticket.NewHandler(ticketService, scheduleService)
	tokenHandler := notification.NewHandler(notification.NewService(tokenRepo))

	limiter := NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, 3*time.Minute)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware())

	router.GET("/health", Health(database))
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	protected := router.Group("/")
	protected.Use(auth.AuthMiddleware(cfg.JWTSecret), limiter.Middleware())

	ownTrainer := []gin.HandlerFunc{auth.RequireRole(auth.RoleTrainer), auth.RequireSelf(auth.RoleTrainer, "trainerID")}
	ownUser := []gin.HandlerFunc{auth.RequireRole(auth.RoleUser), auth.RequireSelf(auth.RoleUser, "userID")}

	trainers := protected.Group("/trainers/:trainerID")
	{
		trainers.GET("", trainerHandler.GetTrainer)
		trainers.GET("/availability", trainerHandler.GetAvailabilities)
		trainers.GET("/schedules", scheduleHandler.GetTrainerSchedules)

		own := trainers.Group("", ownTrainer...)
		own.PUT("", trainerHandler.UpdateTrainer)
		own.PUT("/availability", trainerHandler.ReplaceAvailabilities)
		own.POST("/trainer-users", trainerUserHandler.Register)
		own.GET("/trainer-users", trainerUserHandler.ListByTrainer)
		own.GET("/trainer-users/:userID", trainerUserHandler.Get)
		own.PUT("/trainer-users/:userID", trainerUserHandler.Update)
		own.DELETE("/trainer-users/:userID", trainerUserHandler.End)
		own.GET("/change-tickets", ticketHandler.ListTrainerTickets)
		own.PUT("/fcm-token", tokenHandler.RegisterTrainerToken)
	}

	users := protected.Group("/users/:userID")
	{
		users.GET("", userHandler.GetUser)

		own := users.Group("", ownUser...)
		own.GET("/trainer-users", trainerUserHandler.ListByUser)
		own.GET("/schedules", scheduleHandler.GetUserSchedules)
		own.GET("/change-tickets", ticketHandler.ListUserTickets)
		own.GET("/change-tickets/history", ticketHandler.UserHistory)
		own.PUT("/fcm-token", tokenHandler.RegisterUserToken)
	}

	protected.GET("/members/search", auth.RequireRole(auth.RoleTrainer), userHandler.FindMember)

	schedules := protected.Group("/schedules")
	{
		schedules.POST("", scheduleHandler.CreateSchedule)
		schedules.GET("/:scheduleID", scheduleHandler.GetSchedule)
		schedules.PUT("/:scheduleID", scheduleHandler.ChangeSchedule)
		schedules.DELETE("/:scheduleID", scheduleHandler.DeleteSchedule)
		schedules.GET("/:scheduleID/check-change", scheduleHandler.ValidateScheduleChange)
	}

	tickets := protected.Group("/change-tickets")
	{
		tickets.POST("", ticketHandler.CreateChangeTicket)
		tickets.GET("/:ticketID", ticketHandler.GetChangeTicket)
		tickets.PUT("/:ticketID", ticketHandler.ResolveChangeTicket)
		tickets.DELETE("/:ticketID", ticketHandler.DeleteChangeTicket)
	}

	return &Server{
		router:  router,
		db:      database,
		config:  cfg,
		limiter: limiter,
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Router exposes the engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.Stop()
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, "+RequestIDHeader)
		c.Writer.Header().Set("Access-Control-Expose-Headers", RequestIDHeader)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
