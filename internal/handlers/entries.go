package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dailywell/backend/internal/apierror"
	"github.com/dailywell/backend/internal/models"
	"github.com/dailywell/backend/internal/service"
)

type EntriesHandler struct {
	entryService service.EntryService
	dates        dateParser
}

// NewEntriesHandler creates a handler serving raw entry series to charts
func NewEntriesHandler(entryService service.EntryService, opts service.Options) *EntriesHandler {
	return &EntriesHandler{
		entryService: entryService,
		dates:        newDateParser(opts),
	}
}

// GetEntries handles GET /api/v1/entries/:kind?start_date=&end_date=
func (h *EntriesHandler) GetEntries(c *gin.Context) {
	kind := models.EntryKind(c.Param("kind"))
	start, end, ok := h.dates.rangeQuery(c)
	if !ok {
		return
	}

	entries, err := h.entryService.GetEntries(c.Request.Context(), kind, start, end)
	if errors.Is(err, service.ErrUnknownKind) {
		known := make([]string, len(models.EntryKinds))
		for i, k := range models.EntryKinds {
			known[i] = string(k)
		}
		apierror.WriteProblem(c, apierror.NewUnknownKindError(apierror.GetRequestID(c), string(kind), known))
		return
	}
	if err != nil {
		writeServiceError(c, err, "entries")
		return
	}

	c.JSON(http.StatusOK, models.EntriesResponse{Kind: kind, Entries: entries})
}
