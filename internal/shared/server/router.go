package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"mealplan-backend/internal/foods"
	"mealplan-backend/internal/llm"
	"mealplan-backend/internal/llm/openai"
	"mealplan-backend/internal/macros"
	"mealplan-backend/internal/mealplan"
	"mealplan-backend/internal/prefs"
	"mealplan-backend/internal/services/health"
	"mealplan-backend/internal/shared/config"
	"mealplan-backend/internal/shared/metrics"
	"mealplan-backend/internal/shared/server/middleware"
	"mealplan-backend/internal/shared/server/respond"
	"mealplan-backend/internal/shared/storage/db"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, opts)
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var planRepo mealplan.Repo
	if sqlDB != nil {
		planRepo = &mealplan.PGRepo{DB: sqlDB}
	} else {
		planRepo = mealplan.NewMemoryRepo()
	}

	prefsRepo := newPrefsRepo(cfg, sqlDB)

	var foodRepo foods.Repo
	if sqlDB != nil {
		foodRepo = &foods.PGRepo{DB: sqlDB}
	} else {
		foodRepo = foods.NewMemoryRepo()
	}

	planSvc := &mealplan.Service{Repo: planRepo, LLM: newLLMClient(cfg)}

	macrosHandler := macros.NewHandler()
	planHandler := mealplan.NewHandler(planSvc)
	prefsHandler := prefs.NewHandler(prefsRepo)
	foodsHandler := foods.NewHandler(foodRepo)

	healthSvc := health.NewService(sqlDB)
	r.GET("/healthz", func(c *gin.Context) {
		status := healthSvc.Status(c.Request.Context())
		code := http.StatusOK
		if status["ok"] != true {
			code = http.StatusServiceUnavailable
		}
		respond.JSON(c, code, status)
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	macrosHandler.RegisterRoutes(api)
	planHandler.RegisterRoutes(api)
	prefsHandler.RegisterRoutes(api)
	foodsHandler.RegisterRoutes(api)

	return r
}

// newPrefsRepo picks the preference-list backend. Postgres wins when the
// shared pool is up, otherwise PREFS_STORE decides between sqlite and memory.
func newPrefsRepo(cfg config.Config, sqlDB *sql.DB) prefs.Repo {
	if sqlDB != nil && cfg.PrefsStoreType == config.PrefsStorePostgres {
		return &prefs.PGRepo{DB: sqlDB}
	}
	if cfg.PrefsStoreType == config.PrefsStoreSQLite {
		repo, err := prefs.NewSQLiteRepo(cfg.SQLitePath)
		if err != nil {
			log.Printf("failed to open sqlite prefs store, falling back to memory: %v", err)
		} else {
			return repo
		}
	}
	return prefs.NewMemoryRepo()
}

func newLLMClient(cfg config.Config) llm.Client {
	if cfg.LLMProvider == "openai" && cfg.OpenAIAPIKey != "" {
		client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
		if err == nil {
			return client
		}
		log.Printf("failed to construct openai client, using placeholder: %v", err)
	}
	return &llm.PlaceholderClient{}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
