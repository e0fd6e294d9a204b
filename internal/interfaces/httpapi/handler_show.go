package httpapi

import (
	"context"
	"net/http"

	"github.com/ringbookhq/ringbook/internal/domain/show"
)

type createShowRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

type assignRosterRequest struct {
	WrestlerID int64 `json:"wrestlerId" validate:"required,gt=0"`
}

type showDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type rosterEntryDTO struct {
	ShowID     int64  `json:"showId"`
	WrestlerID int64  `json:"wrestlerId"`
	AssignedAt string `json:"assignedAt"`
}

func (h *Handler) ListShows(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListShows")
	defer span.End()

	items, err := h.showService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list shows failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]showDTO, 0, len(items))
	for _, item := range items {
		out = append(out, showToDTO(ctx, item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateShow(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateShow")
	defer span.End()

	var req createShowRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.showService.Create(ctx, req.Name, req.Description)
	if err != nil {
		h.logger.WarnContext(ctx, "create show failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, showToDTO(ctx, created))
}

func (h *Handler) GetShow(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetShow")
	defer span.End()

	showID, err := pathID(r, "showID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.showService.Get(ctx, showID)
	if err != nil {
		h.logger.WarnContext(ctx, "get show failed", "show_id", showID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, showToDTO(ctx, item))
}

func (h *Handler) ListShowRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListShowRoster")
	defer span.End()

	showID, err := pathID(r, "showID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.rosterService.RosterForShow(ctx, showID)
	if err != nil {
		h.logger.WarnContext(ctx, "list show roster failed", "show_id", showID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]wrestlerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, wrestlerToDTO(ctx, item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) AssignWrestlerToShow(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AssignWrestlerToShow")
	defer span.End()

	showID, err := pathID(r, "showID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req assignRosterRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	entry, err := h.rosterService.AssignToShow(ctx, showID, req.WrestlerID)
	if err != nil {
		h.logger.WarnContext(ctx, "assign wrestler to show failed",
			"show_id", showID, "wrestler_id", req.WrestlerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rosterEntryDTO{
		ShowID:     entry.ShowID,
		WrestlerID: entry.WrestlerID,
		AssignedAt: formatTimeUTC(entry.AssignedAt),
	})
}

func (h *Handler) RemoveWrestlerFromShow(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveWrestlerFromShow")
	defer span.End()

	showID, err := pathID(r, "showID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	wrestlerID, err := pathID(r, "wrestlerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	removed, err := h.rosterService.RemoveFromShow(ctx, showID, wrestlerID)
	if err != nil {
		h.logger.WarnContext(ctx, "remove wrestler from show failed",
			"show_id", showID, "wrestler_id", wrestlerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"removed": removed})
}

func (h *Handler) ListShowTitles(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListShowTitles")
	defer span.End()

	showID, err := pathID(r, "showID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.titleService.TitlesForShow(ctx, showID)
	if err != nil {
		h.logger.WarnContext(ctx, "list show titles failed", "show_id", showID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, titleListToDTO(ctx, items))
}

func (h *Handler) ListWrestlerShows(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListWrestlerShows")
	defer span.End()

	wrestlerID, err := pathID(r, "wrestlerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.rosterService.ShowsForWrestler(ctx, wrestlerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list wrestler shows failed", "wrestler_id", wrestlerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]showDTO, 0, len(items))
	for _, item := range items {
		out = append(out, showToDTO(ctx, item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func showToDTO(ctx context.Context, v show.Show) showDTO {
	ctx, span := startSpan(ctx, "httpapi.showToDTO")
	defer span.End()

	return showDTO{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
	}
}
