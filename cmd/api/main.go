package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "campus-leave-service/internal/adapter/http"
	idemp "campus-leave-service/internal/adapter/middleware"
	"campus-leave-service/internal/adapter/repository/mysql"
	"campus-leave-service/internal/config"
	"campus-leave-service/internal/infrastructure/cache"
	"campus-leave-service/internal/infrastructure/db"
	applicationuc "campus-leave-service/internal/usecase/application"
	approvaluc "campus-leave-service/internal/usecase/approval"
	gateuc "campus-leave-service/internal/usecase/gate"
	"campus-leave-service/pkg/businessday"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	clock, err := businessday.NewClock(cfg.Timezone)
	if err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	apps := mysql.NewApplicationRepository(gdb)
	balances := mysql.NewBalanceRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	applicationUC := applicationuc.NewUsecase(apps, balances, clock)
	approvalUC := approvaluc.NewUsecase(tx)
	gateUC := gateuc.NewUsecase(apps, tx, clock)

	h := httpadp.NewHandler()
	applicationH := httpadp.NewApplicationHandler(applicationUC)
	decisionH := httpadp.NewDecisionHandler(approvalUC)
	gateH := httpadp.NewGateHandler(gateUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	// routes
	e.GET("/health", h.Health)

	e.POST("/applications", applicationH.SubmitApplication)
	e.GET("/applications/:application_id", applicationH.GetApplication)
	e.GET("/staff/:staff_id/applications", applicationH.ListStaffApplications)
	e.GET("/staff/:staff_id/balances/:category", applicationH.GetBalance)
	e.GET("/approvals/pending", applicationH.ListPending)

	// decision endpoints are where client retries hurt; idempotency-guarded
	idempTTL := time.Duration(cfg.IdempTTLSecs) * time.Second
	decisions := e.Group("", idemp.IdempotencyMiddleware(rdb, idempTTL))
	decisions.POST("/applications/:application_id/hod-decision", decisionH.RecordHodDecision)
	decisions.POST("/applications/:application_id/principal-decision", decisionH.RecordPrincipalDecision)

	e.GET("/gate/authorized-today", gateH.ListAuthorizedToday)
	e.POST("/gate/exit/:staff_id", gateH.MarkExit)
	e.POST("/gate/return/:staff_id", gateH.MarkReturn)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
