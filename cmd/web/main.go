package main

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mochwana/aesi-web/internal/handler"
	"github.com/mochwana/aesi-web/internal/models"
	"github.com/mochwana/aesi-web/internal/repository"
	"github.com/mochwana/aesi-web/internal/repository/jsonfile"
	"github.com/mochwana/aesi-web/internal/service"
	"github.com/mochwana/aesi-web/internal/storage"
	"github.com/mochwana/aesi-web/pkg/cache"
	"github.com/mochwana/aesi-web/pkg/config"
	"github.com/mochwana/aesi-web/pkg/database"
	"github.com/mochwana/aesi-web/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	stores, err := buildStores(cfg)
	if err != nil {
		logr.Sugar().Fatalw("failed to init record store", "driver", cfg.Records.Driver, "error", err)
	}

	assets, err := buildAssetStore(cfg)
	if err != nil {
		logr.Sugar().Fatalw("failed to init asset store", "driver", cfg.Assets.Driver, "error", err)
	}

	metrics := service.NewMetricsService()
	cacheSvc := buildCache(cfg, metrics, logr)

	imageSvc := service.NewImageService(stores.images, assets, metrics, logr)
	announcementSvc := service.NewAnnouncementService(stores.announcements, imageSvc, cacheSvc, nil, logr)
	staffSvc := service.NewStaffService(stores.staff, imageSvc, cacheSvc, nil, logr)
	programSvc := service.NewProgramService(stores.programs, assets, stores.images, cacheSvc, logr)
	authSvc := service.NewAuthService(cfg.Admin, cfg.Session, nil, logr)

	r := gin.New()
	r.Use(gin.Recovery())

	registerRoutes(r, cfg, logr, metrics, routeHandlers{
		public:        handler.NewPublicHandler(announcementSvc, staffSvc, programSvc, imageSvc, logr),
		auth:          handler.NewAuthHandler(authSvc),
		admin:         handler.NewAdminHandler(announcementSvc, staffSvc, logr),
		announcements: handler.NewAnnouncementHandler(announcementSvc, logr),
		staff:         handler.NewStaffHandler(staffSvc, logr),
		programs:      handler.NewProgramHandler(programSvc, logr),
		images:        handler.NewImageHandler(imageSvc, logr),
		authService:   authSvc,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting",
		"addr", addr,
		"env", cfg.Env,
		"records", cfg.Records.Driver,
		"assets", cfg.Assets.Driver,
		"cache", cacheSvc.Enabled())
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// recordStores groups the selected backend behind the service
// interfaces.
type recordStores struct {
	announcements service.AnnouncementStore
	staff         service.StaffStore
	programs      service.ProgramStore
	images        service.ImageStore
}

func buildStores(cfg *config.Config) (*recordStores, error) {
	switch cfg.Records.Driver {
	case config.RecordDriverPostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return nil, err
		}
		seeds, err := loadProgramSeeds(cfg.Records.DataDir)
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := repository.EnsureSchema(ctx, db, seeds); err != nil {
			return nil, err
		}
		return &recordStores{
			announcements: repository.NewAnnouncementRepository(db),
			staff:         repository.NewStaffRepository(db),
			programs:      repository.NewProgramRepository(db),
			images:        repository.NewImageRepository(db),
		}, nil
	default:
		if err := os.MkdirAll(cfg.Records.DataDir, 0o755); err != nil {
			return nil, err
		}
		return &recordStores{
			announcements: jsonfile.NewAnnouncementRepository(cfg.Records.DataDir),
			staff:         jsonfile.NewStaffRepository(cfg.Records.DataDir),
			programs:      jsonfile.NewProgramRepository(cfg.Records.DataDir),
			images:        jsonfile.NewImageRepository(cfg.Records.DataDir),
		}, nil
	}
}

// loadProgramSeeds reads the fixed program set shipped in the data dir.
// The same file backs the json driver directly and seeds the database
// driver on first boot.
func loadProgramSeeds(dataDir string) ([]models.Program, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return jsonfile.NewProgramRepository(dataDir).List(ctx)
}

func buildAssetStore(cfg *config.Config) (storage.AssetStore, error) {
	switch cfg.Assets.Driver {
	case config.AssetDriverMinIO:
		return storage.NewMinIOStore(cfg.Assets.MinIO, cfg.Assets.MaxUpload)
	default:
		return storage.NewLocalStore(cfg.Assets.StaticDir, cfg.Assets.MaxUpload), nil
	}
}

func buildCache(cfg *config.Config, metrics *service.MetricsService, logr *zap.Logger) *service.CacheService {
	if !cfg.Cache.Enabled || cfg.Redis.Host == "" {
		return service.NewCacheService(nil, metrics, cfg.Cache.TTL, logr, false)
	}
	client, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		return service.NewCacheService(nil, metrics, cfg.Cache.TTL, logr, false)
	}
	return service.NewCacheService(repository.NewCacheRepository(client, logr), metrics, cfg.Cache.TTL, logr, true)
}

// templateFuncs are the helpers available inside the HTML templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format("January 2, 2006")
		},
		"currentYear": func() int {
			return time.Now().Year()
		},
	}
}
