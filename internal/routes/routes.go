package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/tasmimahana/cse470/internal/auth"
	"github.com/tasmimahana/cse470/internal/config"
	"github.com/tasmimahana/cse470/internal/handlers"
	infraRepo "github.com/tasmimahana/cse470/internal/infra/repository"
	"github.com/tasmimahana/cse470/internal/mailer"
	"github.com/tasmimahana/cse470/internal/metrics"
	"github.com/tasmimahana/cse470/internal/middleware"
	"github.com/tasmimahana/cse470/internal/models"
	"github.com/tasmimahana/cse470/internal/notify"
	ucBooking "github.com/tasmimahana/cse470/internal/usecase/booking"
	ucDonation "github.com/tasmimahana/cse470/internal/usecase/donation"
	ucHealth "github.com/tasmimahana/cse470/internal/usecase/health"
	ucNotification "github.com/tasmimahana/cse470/internal/usecase/notification"
	ucPet "github.com/tasmimahana/cse470/internal/usecase/pet"
	ucUser "github.com/tasmimahana/cse470/internal/usecase/user"
)

// Deps are the process-wide collaborators. Redis and Store are optional:
// without Redis the auth routes are not rate limited, without Store image
// uploads answer 503.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Logger *slog.Logger
	Mailer mailer.Mailer
	Redis  *redis.Client
	Store  ucPet.ObjectStore
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	cfg := deps.Config
	db := deps.DB

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.Use(metrics.GinMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(db)
	petRepo := infraRepo.NewPetGormRepository(db)
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	donationRepo := infraRepo.NewDonationGormRepository(db)
	notificationRepo := infraRepo.NewNotificationGormRepository(db)
	healthRepo := infraRepo.NewHealthLogGormRepository(db)
	trainingRepo := infraRepo.NewTrainingGormRepository(db)
	statsRepo := infraRepo.NewStatsGormRepository(db)

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	cookies := auth.NewCookieWriter(tokens, cfg.CookieSecure)

	dispatcher := notify.NewDispatcher(notify.RepositorySink(notificationRepo), deps.Logger)

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := ucUser.NewRegister(userRepo, deps.Mailer, ucUser.RegisterOptions{
		Origin:           cfg.ClientOrigin,
		CheckEmailDomain: cfg.CheckEmailDomain,
	}, deps.Logger)
	verifyUC := ucUser.NewVerifyEmail(userRepo)
	resendUC := ucUser.NewResendVerification(userRepo, deps.Mailer, cfg.ClientOrigin, deps.Logger)
	loginUC := ucUser.NewLogin(userRepo, userRepo)
	logoutUC := ucUser.NewLogout(userRepo)
	profileUC := ucUser.NewUpdateProfile(userRepo)
	passwordUC := ucUser.NewChangePassword(userRepo)
	roleUC := ucUser.NewUpdateRole(userRepo, dispatcher)
	deleteUserUC := ucUser.NewDeleteUser(userRepo)

	petUC := handlers.PetUseCases{
		Create:      ucPet.NewCreatePet(petRepo),
		Update:      ucPet.NewUpdatePet(petRepo),
		Delete:      ucPet.NewDeletePet(petRepo),
		Approve:     ucPet.NewApprovePet(petRepo, dispatcher),
		Reject:      ucPet.NewRejectPet(petRepo, dispatcher),
		BulkApprove: ucPet.NewBulkApprovePets(petRepo, dispatcher),
	}
	if deps.Store != nil {
		petUC.Upload = ucPet.NewUploadPetImage(petRepo, deps.Store)
	}

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, verifyUC, resendUC, loginUC, logoutUC, cookies)
	userHandler := handlers.NewUserHandler(userRepo, statsRepo, profileUC, passwordUC, tokens)
	adminHandler := handlers.NewAdminHandler(userRepo, statsRepo, roleUC, deleteUserUC)
	petHandler := handlers.NewPetHandler(petRepo, petUC)
	bookingHandler := handlers.NewBookingHandler(
		bookingRepo,
		ucBooking.NewCreateBooking(bookingRepo),
		ucBooking.NewUpdateBooking(bookingRepo, dispatcher),
		ucBooking.NewCancelBooking(bookingRepo, dispatcher),
		ucBooking.NewConfirmBooking(bookingRepo, dispatcher),
	)
	donationHandler := handlers.NewDonationHandler(
		donationRepo,
		statsRepo,
		ucDonation.NewCreateDonation(donationRepo),
		ucDonation.NewUpdateDonationStatus(donationRepo, dispatcher),
	)
	notificationHandler := handlers.NewNotificationHandler(
		notificationRepo,
		ucNotification.NewCompose(userRepo, dispatcher),
	)
	healthHandler := handlers.NewHealthLogHandler(ucHealth.NewLogs(healthRepo))
	trainingHandler := handlers.NewTrainingHandler(trainingRepo)

	authenticate := middleware.Authenticate(tokens, cookies, userRepo)
	adminOnly := middleware.AuthorizeRoles(models.RoleAdmin)

	api := r.Group("/api")

	// ======================================================
	// AUTH
	// ======================================================
	authGroup := api.Group("/auth", middleware.RateLimit(deps.Redis, "auth", cfg.AuthRateLimit, cfg.AuthRateWindow))
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/verify-email", authHandler.VerifyEmail)
		authGroup.POST("/resend-verification", authHandler.ResendVerification)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/logout", authenticate, authHandler.Logout)
		authGroup.GET("/me", authenticate, authHandler.Me)
	}

	// ======================================================
	// PUBLIC
	// ======================================================
	api.GET("/pets", petHandler.List)
	api.GET("/training", trainingHandler.List)
	api.GET("/training/categories", trainingHandler.Categories)
	api.GET("/training/:id", trainingHandler.Get)

	// ======================================================
	// SECURED
	// ======================================================
	secured := api.Group("")
	secured.Use(authenticate)

	users := secured.Group("/users")
	{
		users.GET("/profile", userHandler.Profile)
		users.PATCH("/profile", userHandler.UpdateProfile)
		users.PATCH("/password", userHandler.ChangePassword)
		users.GET("/dashboard", userHandler.Dashboard)
	}

	pets := secured.Group("/pets")
	{
		pets.GET("/my-pets", petHandler.Mine)
		pets.POST("", petHandler.Create)
		pets.PATCH("/:id", petHandler.Update)
		pets.DELETE("/:id", petHandler.Delete)
		pets.POST("/:id/image", petHandler.UploadImage)

		pets.POST("/:id/approve", adminOnly, petHandler.Approve)
		pets.PATCH("/:id/approve", adminOnly, petHandler.Approve)
		pets.PATCH("/:id/reject", adminOnly, petHandler.Reject)
	}
	// single pet reads are public
	api.GET("/pets/:id", petHandler.Get)

	health := secured.Group("/health")
	{
		health.GET("/pet/:petId", healthHandler.ListForPet)
		health.POST("", healthHandler.Create)
		health.GET("/:id", healthHandler.Get)
		health.PATCH("/:id", healthHandler.Update)
		health.DELETE("/:id", healthHandler.Delete)
	}

	training := secured.Group("/training", adminOnly)
	{
		training.POST("", trainingHandler.Create)
		training.PATCH("/:id", trainingHandler.Update)
		training.DELETE("/:id", trainingHandler.Delete)
	}

	bookings := secured.Group("/bookings")
	{
		bookings.POST("", bookingHandler.Create)
		bookings.GET("/my-bookings", bookingHandler.Mine)
		bookings.GET("/:id", bookingHandler.Get)
		bookings.PATCH("/:id", bookingHandler.Update)
		bookings.PATCH("/:id/cancel", bookingHandler.Cancel)

		bookings.GET("", adminOnly, bookingHandler.List)
		bookings.PATCH("/:id/confirm", adminOnly, bookingHandler.Confirm)
	}

	donations := secured.Group("/donations")
	{
		donations.POST("", donationHandler.Create)
		donations.GET("/my-donations", donationHandler.Mine)
		donations.GET("/stats", adminOnly, donationHandler.Stats)
		donations.GET("/:id", donationHandler.Get)

		donations.GET("", adminOnly, donationHandler.List)
		donations.PATCH("/:id/status", adminOnly, donationHandler.UpdateStatus)
	}

	notifications := secured.Group("/notifications")
	{
		notifications.GET("", notificationHandler.List)
		notifications.GET("/unread-count", notificationHandler.UnreadCount)
		notifications.PATCH("/mark-all-read", notificationHandler.MarkAllRead)
		notifications.GET("/:id", notificationHandler.Get)
		notifications.PATCH("/:id/read", notificationHandler.MarkRead)
		notifications.DELETE("/:id", notificationHandler.Delete)

		notifications.POST("", adminOnly, notificationHandler.Compose)
	}

	// ======================================================
	// ADMIN
	// ======================================================
	admin := secured.Group("/admin", adminOnly)
	{
		admin.GET("/dashboard", adminHandler.Dashboard)

		admin.GET("/users", adminHandler.Users)
		admin.GET("/users/:id", adminHandler.User)
		admin.PATCH("/users/:id/role", adminHandler.UpdateRole)
		admin.DELETE("/users/:id", adminHandler.DeleteUser)

		admin.GET("/pets/pending", petHandler.Pending)
		admin.PATCH("/pets/bulk-approve", petHandler.BulkApprove)

		admin.GET("/bookings", bookingHandler.List)
		admin.PATCH("/bookings/:id/confirm", bookingHandler.Confirm)

		admin.GET("/donations", donationHandler.List)
		admin.GET("/donations/stats", donationHandler.Stats)
		admin.PATCH("/donations/:id/status", donationHandler.UpdateStatus)
	}
}
