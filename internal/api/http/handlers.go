package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/AgentOS/urls/internal/api/middleware"
	"github.com/GriffinCanCode/AgentOS/urls/internal/infrastructure/logging"
	"github.com/GriffinCanCode/AgentOS/urls/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/AgentOS/urls/internal/service"
	"github.com/GriffinCanCode/AgentOS/urls/internal/shared/types"
	"github.com/GriffinCanCode/AgentOS/urls/internal/shared/utils"
)

// Version is reported by the root endpoint
const Version = "0.1.0"

var errEmptyBody = errors.New("request body is empty")

var bodyValidator = utils.DefaultJSONValidator()

// Handlers serves the tool API
type Handlers struct {
	registry *service.Registry
	metrics  *monitoring.Metrics
	logger   *logging.Logger
}

// NewHandlers creates handlers around registry. metrics may be nil.
func NewHandlers(registry *service.Registry, metrics *monitoring.Metrics, logger *logging.Logger) *Handlers {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Handlers{registry: registry, metrics: metrics, logger: logger.Named("api")}
}

// Register mounts all routes on router
func (h *Handlers) Register(router gin.IRouter) {
	router.GET("/", h.Root)
	router.GET("/health", h.Health)

	router.GET("/services", h.ListServices)
	router.POST("/services/discover", h.DiscoverServices)
	router.POST("/services/execute", h.ExecuteService)

	if h.metrics != nil {
		router.GET("/metrics", gin.WrapH(h.metrics.Handler()))
	}
}

// Root handles the liveness check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "URL Tools Service",
		"version": Version,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	body := gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
	}
	if h.metrics != nil {
		body["metrics"] = h.metrics.Snapshot()
	}
	c.JSON(http.StatusOK, body)
}

// ListServices lists registered services, optionally filtered by category
func (h *Handlers) ListServices(c *gin.Context) {
	var category *types.Category
	if categoryStr := c.Query("category"); categoryStr != "" {
		cat := types.Category(categoryStr)
		if cat != types.CategoryURL && cat != types.CategoryHTTP {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category: " + categoryStr})
			return
		}
		category = &cat
	}

	c.JSON(http.StatusOK, gin.H{
		"services": h.registry.List(category),
		"stats":    h.registry.Stats(),
	})
}

// DiscoverServices discovers relevant services for a request
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req types.DiscoverRequest
	if err := decodeJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 5
	}

	c.JSON(http.StatusOK, gin.H{
		"query":    req.Message,
		"services": h.registry.Discover(req.Message, limit),
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := decodeJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ToolID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tool_id is required"})
		return
	}

	appCtx := &types.Context{}
	if rid, ok := middleware.GetRequestID(c); ok {
		appCtx.RequestID = &rid
	}

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, appCtx)
	if err != nil {
		h.logger.Warn("Tool execution failed", zap.String("tool", req.ToolID), zap.Error(err))
		status := http.StatusInternalServerError
		if result != nil {
			// Routing failures carry a result describing the bad tool ID
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func decodeJSON(c *gin.Context, v interface{}) error {
	// One byte past the limit is enough for the size check to fail
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, int64(bodyValidator.MaxSize())+1))
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return errEmptyBody
	}
	if err := bodyValidator.ValidateJSON(data); err != nil {
		return err
	}
	return sonic.Unmarshal(data, v)
}
