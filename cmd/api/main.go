package main

import (
	"fmt"
	"net/http"

	"github.com/agrilabs/wms-backend-go/internal/config"
	appHTTP "github.com/agrilabs/wms-backend-go/internal/handler/http"
	"github.com/agrilabs/wms-backend-go/internal/pkg/cron"
	"github.com/agrilabs/wms-backend-go/internal/pkg/database"
	"github.com/agrilabs/wms-backend-go/internal/pkg/jwt"
	"github.com/agrilabs/wms-backend-go/internal/repository/postgresql"
	advanceService "github.com/agrilabs/wms-backend-go/internal/service/advance"
	attendanceService "github.com/agrilabs/wms-backend-go/internal/service/attendance"
	serviceAuth "github.com/agrilabs/wms-backend-go/internal/service/auth"
	extraService "github.com/agrilabs/wms-backend-go/internal/service/extra"
	insightsService "github.com/agrilabs/wms-backend-go/internal/service/insights"
	lockService "github.com/agrilabs/wms-backend-go/internal/service/lock"
	notificationService "github.com/agrilabs/wms-backend-go/internal/service/notification"
	settlementService "github.com/agrilabs/wms-backend-go/internal/service/settlement"
	workerService "github.com/agrilabs/wms-backend-go/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	farmerRepo := postgresql.NewFarmerRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	extraRepo := postgresql.NewExtraRepository(db)
	settlementRepo := postgresql.NewSettlementRepository(db)
	insightsRepo := postgresql.NewInsightsRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	periodLock := lockService.NewLockService(settlementRepo)
	authSvc := serviceAuth.NewAuthService(farmerRepo, JWTService)
	workerSvc := workerService.NewWorkerService(db, workerRepo, attendanceRepo, advanceRepo, extraRepo, settlementRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, workerRepo, periodLock)
	advanceSvc := advanceService.NewAdvanceService(advanceRepo, workerRepo, periodLock)
	extraSvc := extraService.NewExtraService(extraRepo, workerRepo, periodLock)
	settlementSvc := settlementService.NewSettlementService(db, settlementRepo, attendanceRepo, advanceRepo, extraRepo, workerRepo)
	insightsSvc := insightsService.NewInsightsService(insightsRepo)
	notificationSvc := notificationService.NewNotificationService(notificationRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	workerHandler := appHTTP.NewWorkerHandler(workerSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	advanceHandler := appHTTP.NewAdvanceHandler(advanceSvc)
	extraHandler := appHTTP.NewExtraHandler(extraSvc)
	settlementHandler := appHTTP.NewSettlementHandler(settlementSvc)
	insightsHandler := appHTTP.NewInsightsHandler(insightsSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc)

	router := appHTTP.NewRouter(
		JWTService,
		cfg.App.FrontendURL,
		authHandler,
		workerHandler,
		attendanceHandler,
		advanceHandler,
		extraHandler,
		settlementHandler,
		insightsHandler,
		notificationHandler,
	)

	scheduler := cron.NewScheduler()
	settlementJobs := cron.NewSettlementJobs(farmerRepo, insightsSvc, notificationRepo, notificationSvc)
	settlementJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
