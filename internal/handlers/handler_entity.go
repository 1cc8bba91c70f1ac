package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/donation_tracker/internal/core/store"
	"github.com/SscSPs/donation_tracker/internal/dto"
	"github.com/SscSPs/donation_tracker/internal/middleware"
	"github.com/SscSPs/donation_tracker/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// entityStore is the UI-facing surface of a store.
type entityStore[E any] interface {
	Name() string
	Snapshot() store.Snapshot[E]
	Resolve(m store.Mode) (E, error)
	Load(ctx context.Context, force bool) error
	Search(ctx context.Context, text string) error
	SetNotLoaded()
	Add(ctx context.Context, e E) (E, error)
	Update(ctx context.Context, e E) (E, error)
	DeleteByID(ctx context.Context, id int64) error
}

// entityRequest is a request DTO that knows how to fill in an entity.
type entityRequest[E any] interface {
	ApplyTo(E) E
}

// checker is implemented by requests with rules binding tags cannot express.
type checker interface {
	Check() error
}

// entityHandler serves the same routes for every entity type.
type entityHandler[E any, R entityRequest[E]] struct {
	store entityStore[E]
	blank func() E
}

// registerEntityRoutes registers the store routes under rg/path.
func registerEntityRoutes[E any, R entityRequest[E]](rg *gin.RouterGroup, path string, s entityStore[E], blank func() E) *gin.RouterGroup {
	h := &entityHandler[E, R]{store: s, blank: blank}

	g := rg.Group(path)
	{
		g.GET("", h.snapshot)
		g.GET("/:id", h.resolve)
		g.POST("/load", h.load)
		g.POST("/search", h.search)
		g.POST("/reset", h.reset)
		g.POST("", h.add)
		g.PUT("/:id", h.update)
		g.DELETE("/:id", h.delete)
	}
	return g
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

// snapshot returns the cached entities, the loading state and the search text.
// With ?limit the entities are paged; pageToken continues from an earlier page
// of the same snapshot version.
func (h *entityHandler[E, R]) snapshot(c *gin.Context) {
	snap := h.store.Snapshot()
	limitStr, token := c.Query("limit"), c.Query("pageToken")
	if limitStr == "" && token == "" {
		c.JSON(http.StatusOK, snap)
		return
	}

	limit, err := strconv.Atoi(limitStr)
	if limitStr != "" && (err != nil || limit < 1) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}
	page, next, err := pagination.Page(snap.Entities, snap.Version, token, limit)
	if errors.Is(err, pagination.ErrStaleToken) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.SnapshotPage[E]{
		Entities:      page,
		LoadingState:  snap.State,
		SearchText:    snap.SearchText,
		Version:       snap.Version,
		NextPageToken: next,
	})
}

// resolve returns the cached entity an editor opened in edit mode works on.
func (h *entityHandler[E, R]) resolve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	e, err := h.store.Resolve(store.EditMode(id))
	if err != nil {
		respondError(c, middleware.GetLoggerFromContext(c), err, "get "+h.store.Name())
		return
	}
	c.JSON(http.StatusOK, e)
}

// load fills the cache; ?force=true reloads even when already loaded.
func (h *entityHandler[E, R]) load(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	force, _ := strconv.ParseBool(c.Query("force"))

	if err := h.store.Load(c.Request.Context(), force); err != nil {
		respondError(c, logger, err, "load "+h.store.Name())
		return
	}
	c.JSON(http.StatusOK, h.store.Snapshot())
}

func (h *entityHandler[E, R]) search(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if err := h.store.Search(c.Request.Context(), req.Text); err != nil {
		respondError(c, logger, err, "search "+h.store.Name())
		return
	}
	c.JSON(http.StatusOK, h.store.Snapshot())
}

// reset moves the store back to NotLoaded.
func (h *entityHandler[E, R]) reset(c *gin.Context) {
	h.store.SetNotLoaded()
	c.JSON(http.StatusOK, h.store.Snapshot())
}

func (h *entityHandler[E, R]) bind(c *gin.Context) (R, bool) {
	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.GetLoggerFromContext(c).Warn("Failed to bind JSON", slog.String("store", h.store.Name()), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return req, false
	}
	if ch, ok := any(req).(checker); ok {
		if err := ch.Check(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return req, false
		}
	}
	return req, true
}

func (h *entityHandler[E, R]) add(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	req, ok := h.bind(c)
	if !ok {
		return
	}

	created, err := h.store.Add(c.Request.Context(), req.ApplyTo(h.blank()))
	if err != nil {
		respondError(c, logger, err, "create "+h.store.Name())
		return
	}
	logger.Info("Entity created", slog.String("store", h.store.Name()))
	c.JSON(http.StatusCreated, created)
}

// update edits the cached entity with the given id, loading the store first
// when it has not been loaded yet.
func (h *entityHandler[E, R]) update(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	id, ok := parseID(c)
	if !ok {
		return
	}
	req, ok := h.bind(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.store.Load(ctx, false); err != nil {
		respondError(c, logger, err, "load "+h.store.Name())
		return
	}
	current, err := h.store.Resolve(store.EditMode(id))
	if err != nil {
		respondError(c, logger, err, "update "+h.store.Name())
		return
	}

	updated, err := h.store.Update(ctx, req.ApplyTo(current))
	if err != nil {
		respondError(c, logger, err, "update "+h.store.Name())
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *entityHandler[E, R]) delete(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.store.DeleteByID(c.Request.Context(), id); err != nil {
		respondError(c, logger, err, "delete "+h.store.Name())
		return
	}
	logger.Info("Entity deleted", slog.String("store", h.store.Name()), slog.Int64("id", id))
	c.Status(http.StatusNoContent)
}
