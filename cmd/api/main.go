package main

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	httpadp "schooldekho-loan-service/internal/adapter/http"
	idemp "schooldekho-loan-service/internal/adapter/middleware"
	"schooldekho-loan-service/internal/adapter/repository/mysql"
	"schooldekho-loan-service/internal/config"
	"schooldekho-loan-service/internal/infrastructure/cache"
	"schooldekho-loan-service/internal/infrastructure/db"
	"schooldekho-loan-service/internal/infrastructure/seed"
	loanUC "schooldekho-loan-service/internal/usecase/loan"
)

func main() {
	cfg := config.Load()
	log := logrus.New()
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	if cfg.SeedSchools {
		if err := seed.SchoolsOnceIfEmpty(context.Background(), gdb, log); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}

	loans := mysql.NewLoanRepository(gdb)
	schools := mysql.NewSchoolRepository(gdb)
	uow := mysql.NewGormUoW(gdb)
	uc := loanUC.NewUsecase(loans, schools, uow, log)

	h := httpadp.NewHandler()
	lh := httpadp.NewLoanHandler(uc)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	e.GET("/health", h.Health)

	api := e.Group("/api")
	api.Use(idemp.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	api.GET("/loans", lh.ListLoans)
	api.POST("/loans", lh.CreateLoan)
	api.GET("/loans/pending-emis", lh.PendingEMIs)
	api.GET("/loans/:number", lh.GetLoan)
	api.PATCH("/loans/:number", lh.UpdateLoan)
	api.POST("/loans/:number/transition", lh.TransitionLoan)

	addr := ":" + cfg.AppPort
	log.Infof("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
