package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"contrib-credit/internal/adapter"
	"contrib-credit/internal/github"
	"contrib-credit/internal/graph"
	"contrib-credit/internal/memory"
	"contrib-credit/internal/tools"
	"contrib-credit/pkg/config"
	"contrib-credit/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load configuration: %v", err))
	}

	// Initialize logger
	if err := logger.Init(cfg.Env); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting contrib-credit tool server...")

	// Initialize the memory store. The recorder is best-effort by contract,
	// so an unreachable Neo4j degrades to memory_stored=false instead of
	// refusing to boot.
	var noteStore memory.NoteStore
	driver, err := neo4j.NewDriverWithContext(
		cfg.Neo4jURI,
		neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""),
	)
	if err != nil {
		log.Warn("Failed to create Neo4j driver, memory recording disabled", zap.Error(err))
	} else {
		defer driver.Close(context.Background())
		if err := driver.VerifyConnectivity(context.Background()); err != nil {
			log.Warn("Neo4j unreachable, memory recording disabled", zap.Error(err))
		} else {
			noteStore = graph.NewRepository(driver)
		}
	}

	// Initialize dependencies
	githubClient := github.NewClient(cfg.GitHubAPIBaseURL, cfg.GitHubToken,
		time.Duration(cfg.HTTPTimeoutSeconds)*time.Second)
	recorder := memory.NewRecorder(noteStore)
	executor := tools.NewExecutor(githubClient, recorder)

	// Setup Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(ginLogger(log))
	router.Use(gin.Recovery())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":         "ok",
			"memory_backend": noteStore != nil,
		})
	})

	// API routes
	api := router.Group("/api")
	{
		// List tool definitions for host registration. ?format=openai returns
		// the OpenAI function-calling shape.
		api.GET("/tools", func(c *gin.Context) {
			defs := tools.GetContributorTools()
			if c.Query("format") == "openai" {
				c.JSON(http.StatusOK, gin.H{"tools": adapter.ToOpenAITools(defs)})
				return
			}
			c.JSON(http.StatusOK, gin.H{"tools": defs})
		})

		// Invoke a tool by name
		api.POST("/tools/:name", func(c *gin.Context) {
			name := c.Param("name")
			ctx := c.Request.Context()

			var req struct {
				Arguments map[string]interface{} `json:"arguments"`
				AgentID   string                 `json:"agent_id"`
				UserID    string                 `json:"user_id"`
			}

			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if req.Arguments == nil {
				req.Arguments = make(map[string]interface{})
			}

			result := executor.Execute(ctx, &tools.ExecutionContext{
				AgentID:  req.AgentID,
				UserID:   req.UserID,
				Platform: "http",
			}, adapter.ToolCall{
				Name:      name,
				Arguments: req.Arguments,
			})

			c.JSON(http.StatusOK, result)
		})
	}

	// Start server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	g, gctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		log.Info("Server started", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case <-quit:
		case <-gctx.Done():
			return gctx.Err()
		}

		log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		log.Error("Server exited with error", zap.Error(err))
	}

	log.Info("Server exited")
}

// ginLogger is a custom logger middleware for Gin
func ginLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		log.Info("HTTP Request",
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
		)
	}
}
