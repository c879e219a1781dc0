package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/chronoline/attendance-backend-go/internal/config"
	appHTTP "github.com/chronoline/attendance-backend-go/internal/handler/http"
	"github.com/chronoline/attendance-backend-go/internal/pkg/clock"
	"github.com/chronoline/attendance-backend-go/internal/pkg/cron"
	"github.com/chronoline/attendance-backend-go/internal/pkg/database"
	"github.com/chronoline/attendance-backend-go/internal/pkg/jwt"
	"github.com/chronoline/attendance-backend-go/internal/pkg/oauth"
	"github.com/chronoline/attendance-backend-go/internal/repository/postgresql"
	authService "github.com/chronoline/attendance-backend-go/internal/service/auth"
	holidayService "github.com/chronoline/attendance-backend-go/internal/service/holiday"
	justificationService "github.com/chronoline/attendance-backend-go/internal/service/justification"
	reportService "github.com/chronoline/attendance-backend-go/internal/service/report"
	shiftService "github.com/chronoline/attendance-backend-go/internal/service/shift"
	timeeventService "github.com/chronoline/attendance-backend-go/internal/service/timeevent"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRuleRepo := postgresql.NewShiftRuleRepository(db)
	shiftAssignmentRepo := postgresql.NewShiftAssignmentRepository(db)
	timeEventRepo := postgresql.NewTimeEventRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	justificationRepo := postgresql.NewJustificationRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleSvc := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	clk := clock.System()

	authSvc := authService.NewAuthService(userRepo, jwtSvc, googleSvc)
	shiftSvc := shiftService.NewShiftService(db, shiftRuleRepo, shiftAssignmentRepo, employeeRepo)
	timeEventSvc := timeeventService.NewTimeEventService(timeEventRepo, clk)
	holidaySvc := holidayService.NewHolidayService(holidayRepo, clk)
	justificationSvc := justificationService.NewJustificationService(justificationRepo, clk)
	reportSvc := reportService.NewReportService(employeeRepo, timeEventRepo, holidayRepo, justificationRepo, clk)

	handlers := appHTTP.Handlers{
		Auth:          appHTTP.NewAuthHandler(jwtSvc, authSvc, googleSvc),
		TimeEvent:     appHTTP.NewTimeEventHandler(timeEventSvc),
		Shift:         appHTTP.NewShiftHandler(shiftSvc),
		Holiday:       appHTTP.NewHolidayHandler(holidaySvc),
		Justification: appHTTP.NewJustificationHandler(justificationSvc),
		Report:        appHTTP.NewReportHandler(reportSvc, clk),
	}

	refreshLifetime, err := time.ParseDuration(cfg.JWT.RefreshExpiration)
	if err != nil {
		fmt.Println("Invalid JWT_REFRESH_EXPIRATION_TIME:", err)
		return
	}
	scheduler := cron.NewScheduler()
	scheduler.AddJob("prune-revoked-tokens", time.Hour, cron.TokenPruneJob(jwtSvc, refreshLifetime))
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtSvc, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
