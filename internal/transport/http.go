package transport

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cogwell/cogniscreen/internal/access"
	"github.com/cogwell/cogniscreen/internal/domain/assessment"
	"github.com/cogwell/cogniscreen/internal/domain/report"
	"github.com/cogwell/cogniscreen/internal/domain/result"
	"github.com/cogwell/cogniscreen/internal/domain/stage"
	"github.com/gin-gonic/gin"
)

// Services bundles the domain services the HTTP adapter exposes.
type Services struct {
	Assessments *assessment.Service
	Results     *result.Service
	Reports     *report.Service
}

type handler struct {
	svcs   Services
	logger *slog.Logger
}

// NewRouter wires the gin router. The adapter is a thin presentation layer:
// it translates JSON to domain calls and domain errors to status codes.
func NewRouter(svcs Services, authMiddleware gin.HandlerFunc, logger *slog.Logger) *gin.Engine {
	if logger == nil {
		logger = slog.Default()
	}
	h := &handler{svcs: svcs, logger: logger}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := r.Group("/api/v1")
	if authMiddleware != nil {
		api.Use(authMiddleware)
	}

	api.GET("/content", h.content)
	api.POST("/assessments", h.begin)
	api.GET("/assessments/:id", h.get)
	api.POST("/assessments/:id/stages/:kind", h.submitStage)
	api.POST("/assessments/:id/abandon", h.abandon)
	api.GET("/results", h.listOwnResults)
	api.GET("/admin/overview", h.overview)
	api.GET("/admin/actors", h.listActors)

	return r
}

// content serves the canonical stage material the client renders: prompts,
// target words, questions and timing.
func (h *handler) content(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"voice": gin.H{
			"prompts":               stage.Prompts(),
			"recording_cap_seconds": stage.RecordingCapSeconds,
		},
		"memory": gin.H{
			"target_words":     stage.TargetWords(),
			"memorize_seconds": stage.MemorizeSeconds,
		},
		"survey": gin.H{
			"questions": stage.Questions(),
		},
	})
}

func (h *handler) begin(c *gin.Context) {
	view, err := h.svcs.Assessments.Begin(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *handler) get(c *gin.Context) {
	view, err := h.svcs.Assessments.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *handler) submitStage(c *gin.Context) {
	var raw stage.RawInput
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	kind := stage.Kind(c.Param("kind"))
	out, err := h.svcs.Assessments.SubmitStage(c.Request.Context(), c.Param("id"), kind, raw)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := gin.H{"session": out.View}
	if out.Result != nil {
		resp["result"] = out.Result
		resp["guidance"] = result.GuidanceFor(out.Result.Level)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) abandon(c *gin.Context) {
	if err := h.svcs.Assessments.Abandon(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) listOwnResults(c *gin.Context) {
	ctx := c.Request.Context()
	caller, ok := access.ActorFromContext(ctx)
	if !ok {
		h.writeError(c, result.ErrNotAuthenticated)
		return
	}

	results, err := h.svcs.Results.ListForActor(ctx, caller)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (h *handler) overview(c *gin.Context) {
	view, err := h.svcs.Reports.Overview(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *handler) listActors(c *gin.Context) {
	actors, err := h.svcs.Results.ListActors(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"actors": actors})
}

func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, result.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	case errors.Is(err, result.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
	case errors.Is(err, assessment.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, assessment.ErrInvalidStageTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "submitted stage is not the current stage"})
	case errors.Is(err, assessment.ErrSessionFinished):
		c.JSON(http.StatusConflict, gin.H{"error": "session already finished"})
	case errors.Is(err, assessment.ErrIncompletePayload):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "stage data is incomplete"})
	default:
		h.logger.Error("request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
