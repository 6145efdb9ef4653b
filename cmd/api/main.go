package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "campus-approvals/internal/adapter/http"
	mw "campus-approvals/internal/adapter/middleware"
	"campus-approvals/internal/adapter/repository/mysql"
	"campus-approvals/internal/config"
	"campus-approvals/internal/infrastructure/cache"
	"campus-approvals/internal/infrastructure/db"
	ucApproval "campus-approvals/internal/usecase/approval"
	ucProposal "campus-approvals/internal/usecase/proposal"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	approverRepo := mysql.NewApproverRepository(gdb)
	proposalRepo := mysql.NewProposalRepository(gdb)
	approvalRepo := mysql.NewApprovalRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	proposalUC := ucProposal.NewUsecase(proposalRepo, tx)
	approvalUC := ucApproval.NewUsecase(approverRepo, proposalRepo, approvalRepo, tx)

	h := httpadp.NewHandler()
	ph := httpadp.NewProposalHandler(proposalUC)
	ah := httpadp.NewApprovalHandler(approvalUC)
	pub := httpadp.NewPublicHandler(approvalUC)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())
	e.Validator = httpadp.NewValidator()

	e.GET("/health", h.Health)
	e.GET("/public/proposals/:proposal_id/status", pub.Status)

	api := e.Group("/api")
	api.POST("/proposals", ph.CreateProposal)
	api.GET("/proposals", ph.ListProposals)
	api.GET("/proposals/:proposal_id", ph.GetProposal)
	api.GET("/proposals/:proposal_id/approvals", ah.ListApprovals)
	api.GET("/proposals/:proposal_id/eligibility", ah.Eligibility)

	// Mutating decision routes replay through redis on retried Ax-Request-Ids.
	idemp := mw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)
	api.POST("/proposals/:proposal_id/decision", ah.RecordDecision, idemp)
	api.PUT("/proposals/:proposal_id/status", ph.ForceStatus, idemp)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
