package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"ecowaste-be/config"
	"ecowaste-be/controllers"
	"ecowaste-be/logging"
	"ecowaste-be/metrics"
	"ecowaste-be/observability"
	"ecowaste-be/routes"
	"ecowaste-be/services"
	"ecowaste-be/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	lg, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer lg.Closer()

	flush, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, "ecowaste-be")
	if err != nil {
		lg.Sugar.Warnw("sentry init failed", "err", err)
	}
	defer flush()

	db := config.ConnectDB()
	if db == nil {
		lg.Base.Fatal("Failed to connect to MongoDB")
	}
	lg.Base.Info("MongoDB connection established")

	config.ConnectRedis()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := store.EnsureCompletionIndex(ctx, db.Collection("completions")); err != nil {
		lg.Sugar.Warnw("ensuring completion index", "err", err)
	}
	cancel()

	reportStore := store.NewMongoReportStore(db.Collection("reports"))
	completionStore := store.NewMongoCompletionStore(db.Collection("completions"))
	userStore := store.NewMongoUserStore(db.Collection("users"))

	events := &services.LogSink{Log: lg.Base}
	reportSvc := services.NewReportService(reportStore, events)
	trainingSvc := services.NewTrainingService(completionStore, events)
	rewards := services.NewRewardsEngine(reportStore, completionStore)
	dashboards := services.NewDashboardService(reportStore, userStore, rewards, trainingSvc, lg.Base)

	authCtl := controllers.NewAuthController(userStore, lg.Base)
	reportCtl := controllers.NewReportController(reportSvc)
	trainingCtl := controllers.NewTrainingController(trainingSvc, rewards)
	dashboardCtl := controllers.NewDashboardController(dashboards, reportSvc)

	r := gin.Default()

	routes.AuthRoutes(r, authCtl)
	routes.ReportRoutes(r, reportCtl, cfg.DailyReportLimit)
	routes.TrainingRoutes(r, trainingCtl)
	routes.DashboardRoutes(r, dashboardCtl)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	lg.Base.Info("starting server", zap.String("addr", cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		lg.Base.Fatal("Failed to start server", zap.Error(err))
	}
}
