package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"selling-sisters-api/internal/config"
	"selling-sisters-api/internal/controller"
	"selling-sisters-api/internal/middleware"
	"selling-sisters-api/internal/model"
	"selling-sisters-api/internal/repository"
	"selling-sisters-api/internal/router"
	"selling-sisters-api/internal/service"
	"selling-sisters-api/internal/task"
	"selling-sisters-api/pkg/database"
	"selling-sisters-api/pkg/kv"
	"selling-sisters-api/pkg/logger"
)

func main() {
	// 1. 加载配置和日志
	cfg := config.Load()
	zapLogger := logger.Init(cfg.Debug)
	defer zapLogger.Sync()

	// 2. 初始化数据库
	db := initDatabase(cfg)

	// 3. 初始化依赖
	deps := initDependencies(cfg, db, zapLogger)

	// 4. 启动定时任务
	initTasks(deps)

	// 5. 初始化路由
	r := router.Setup(
		deps.Controllers.Content,
		deps.Controllers.Order,
		deps.Controllers.Upload,
		deps.Limiter,
		cfg.Debug,
	)

	// 6. 启动服务
	startServer(r, cfg, deps)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	KVStore     *kv.GormStore
	Limiter     *middleware.RateLimiter
	Controllers *Controllers
	Services    *Services
	Logger      *zap.Logger
}

// Services 服务集合
type Services struct {
	Catalog *service.CatalogService
	Order   *service.OrderService
	Storage *service.StorageService
}

// Controllers 控制器集合
type Controllers struct {
	Content *controller.ContentController
	Order   *controller.OrderController
	Upload  *controller.UploadController
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库
func initDatabase(cfg *config.Config) *gorm.DB {
	return database.InitDB(cfg.DatabaseDSN, cfg.SQLitePath,
		&model.CatalogRecord{},
		&kv.Entry{},
	)
}

// initDependencies 初始化所有依赖
func initDependencies(cfg *config.Config, db *gorm.DB, zapLogger *zap.Logger) *Dependencies {
	// -------- 基础设施 --------
	kvStore := kv.NewGormStore(db)
	limiter := middleware.NewRateLimiter(kvStore, cfg.RateLimitWindow, cfg.RateLimitMax, zapLogger)

	// -------- Repo 层 --------
	catalogRepo := repository.NewCatalogRepository(db)

	// -------- 业务服务 --------
	sender := service.NewResendSender(cfg.ResendAPIKey, zapLogger)
	guard := service.NewIdempotencyGuard(kvStore, zapLogger)

	services := &Services{
		Catalog: service.NewCatalogService(catalogRepo, cfg.PublishSecret, zapLogger),
		Order:   service.NewOrderService(sender, guard, cfg.OrderRecipient, cfg.EmailFrom, zapLogger),
		Storage: service.NewStorageService(initBlobStore(cfg, zapLogger), zapLogger),
	}

	// -------- Controller 层 --------
	controllers := &Controllers{
		Content: controller.NewContentController(services.Catalog),
		Order:   controller.NewOrderController(services.Order),
		Upload:  controller.NewUploadController(services.Storage),
	}

	return &Dependencies{
		DB:          db,
		KVStore:     kvStore,
		Limiter:     limiter,
		Controllers: controllers,
		Services:    services,
		Logger:      zapLogger,
	}
}

// initBlobStore 初始化对象存储，未配置时返回 nil（上传走开发模式）
func initBlobStore(cfg *config.Config, zapLogger *zap.Logger) service.BlobStore {
	if cfg.AWSBucket == "" || cfg.AWSAccessKey == "" || cfg.AWSSecretKey == "" {
		zapLogger.Info("对象存储未配置，上传使用开发模式")
		return nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKey, cfg.AWSSecretKey, ""),
		),
	)
	if err != nil {
		zapLogger.Warn("S3 配置加载失败，上传使用开发模式", zap.Error(err))
		return nil
	}

	client := s3.NewFromConfig(awsCfg)
	return service.NewS3Store(client, cfg.AWSBucket, cfg.AWSRegion, cfg.AWSCDNDomain)
}

// ==================== 定时任务 ====================

// initTasks 初始化定时任务
func initTasks(deps *Dependencies) {
	sweepTask := task.NewKVSweepTask(deps.KVStore, deps.Logger)
	if err := sweepTask.Start(); err != nil {
		log.Fatalf("定时任务启动失败: %v", err)
	}
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(r *gin.Engine, cfg *config.Config, deps *Dependencies) {
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// 异步启动服务
	go func() {
		deps.Logger.Info("服务启动", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	deps.Logger.Info("正在关闭服务...")

	// 优雅关闭，最多等待 30 秒
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务强制关闭: %v", err)
	}

	deps.Logger.Info("服务已退出")
}
