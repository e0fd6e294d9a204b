package httpapi

import (
	"context"
	"net/http"

	"github.com/ringbookhq/ringbook/internal/domain/reign"
	"github.com/ringbookhq/ringbook/internal/domain/title"
	"github.com/ringbookhq/ringbook/internal/usecase"
)

type createTitleRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Type     string `json:"type" validate:"required,oneof=Singles 'Tag Team'"`
	Division string `json:"division" validate:"required,max=100"`
	Gender   string `json:"gender" validate:"required,oneof=Male Female Mixed"`
	ShowID   int64  `json:"showId" validate:"omitempty,gt=0"`
}

type assignTitleRequest struct {
	WrestlerID    int64  `json:"wrestlerId" validate:"required,gt=0"`
	EventName     string `json:"eventName" validate:"max=200"`
	EventLocation string `json:"eventLocation" validate:"max=200"`
	ChangeMethod  string `json:"changeMethod" validate:"required"`
}

type vacateTitleRequest struct {
	EventName     string `json:"eventName" validate:"max=200"`
	EventLocation string `json:"eventLocation" validate:"max=200"`
	ChangeMethod  string `json:"changeMethod" validate:"required"`
}

type titleDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Division     string `json:"division"`
	PrestigeTier int    `json:"prestigeTier"`
	Gender       string `json:"gender"`
	ShowID       int64  `json:"showId,omitempty"`
	IsActive     bool   `json:"isActive"`
}

type holderDTO struct {
	WrestlerID   int64  `json:"wrestlerId"`
	WrestlerName string `json:"wrestlerName"`
	HeldSince    string `json:"heldSince"`
	DaysHeld     int    `json:"daysHeld"`
	EventName    string `json:"eventName,omitempty"`
	ChangeMethod string `json:"changeMethod"`
}

type titleWithHoldersDTO struct {
	Title          titleDTO    `json:"title"`
	CurrentHolders []holderDTO `json:"currentHolders"`
	DaysHeld       *int        `json:"daysHeld,omitempty"`
}

type reignDTO struct {
	ID            int64  `json:"id"`
	TitleID       int64  `json:"titleId"`
	WrestlerID    int64  `json:"wrestlerId"`
	HeldSince     string `json:"heldSince"`
	HeldUntil     string `json:"heldUntil,omitempty"`
	EventName     string `json:"eventName,omitempty"`
	EventLocation string `json:"eventLocation,omitempty"`
	ChangeMethod  string `json:"changeMethod"`
}

type heldTitleDTO struct {
	Title     titleDTO `json:"title"`
	HeldSince string   `json:"heldSince"`
	DaysHeld  int      `json:"daysHeld"`
}

func (h *Handler) ListTitles(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTitles")
	defer span.End()

	items, err := h.titleService.ListTitles(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list titles failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, titleListToDTO(ctx, items))
}

func (h *Handler) CreateTitle(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTitle")
	defer span.End()

	var req createTitleRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.titleService.CreateBelt(ctx, usecase.CreateBeltInput{
		Name:     req.Name,
		Type:     req.Type,
		Division: req.Division,
		Gender:   req.Gender,
		ShowID:   req.ShowID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create title failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, titleToDTO(ctx, created))
}

func (h *Handler) ListUnassignedTitles(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUnassignedTitles")
	defer span.End()

	items, err := h.titleService.UnassignedTitles(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list unassigned titles failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, titleListToDTO(ctx, items))
}

func (h *Handler) ListTitleHolders(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTitleHolders")
	defer span.End()

	titleID, err := pathID(r, "titleID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	holders, err := h.championshipService.CurrentHolders(ctx, titleID)
	if err != nil {
		h.logger.WarnContext(ctx, "list title holders failed", "title_id", titleID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]holderDTO, 0, len(holders))
	for _, holder := range holders {
		out = append(out, holderToDTO(ctx, holder))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) AssignTitle(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AssignTitle")
	defer span.End()

	titleID, err := pathID(r, "titleID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req assignTitleRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	started, err := h.championshipService.AssignTitle(ctx, usecase.AssignTitleInput{
		TitleID:       titleID,
		WrestlerID:    req.WrestlerID,
		EventName:     req.EventName,
		EventLocation: req.EventLocation,
		ChangeMethod:  reign.ChangeMethod(req.ChangeMethod),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "assign title failed",
			"title_id", titleID, "wrestler_id", req.WrestlerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.titleService.InvalidateHolderCaches(ctx)
	writeSuccess(ctx, w, http.StatusCreated, reignToDTO(ctx, started))
}

func (h *Handler) VacateTitle(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.VacateTitle")
	defer span.End()

	titleID, err := pathID(r, "titleID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req vacateTitleRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	closed, changed, err := h.championshipService.VacateTitle(ctx, usecase.VacateTitleInput{
		TitleID:       titleID,
		EventName:     req.EventName,
		EventLocation: req.EventLocation,
		ChangeMethod:  reign.ChangeMethod(req.ChangeMethod),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "vacate title failed", "title_id", titleID, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !changed {
		writeSuccess(ctx, w, http.StatusOK, map[string]bool{"vacated": false})
		return
	}

	h.titleService.InvalidateHolderCaches(ctx)
	writeSuccess(ctx, w, http.StatusOK, reignToDTO(ctx, closed))
}

func (h *Handler) ListTitleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTitleHistory")
	defer span.End()

	titleID, err := pathID(r, "titleID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.championshipService.History(ctx, titleID)
	if err != nil {
		h.logger.WarnContext(ctx, "list title history failed", "title_id", titleID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]reignDTO, 0, len(items))
	for _, item := range items {
		out = append(out, reignToDTO(ctx, item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListWrestlerTitles(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListWrestlerTitles")
	defer span.End()

	wrestlerID, err := pathID(r, "wrestlerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.championshipService.CurrentTitlesForWrestler(ctx, wrestlerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list wrestler titles failed", "wrestler_id", wrestlerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]heldTitleDTO, 0, len(items))
	for _, item := range items {
		out = append(out, heldTitleDTO{
			Title:     titleToDTO(ctx, item.Title),
			HeldSince: formatTimeUTC(item.Reign.HeldSince),
			DaysHeld:  item.DaysHeld,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListAssignableTitles(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAssignableTitles")
	defer span.End()

	wrestlerID, err := pathID(r, "wrestlerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.championshipService.AssignableTitles(ctx, wrestlerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list assignable titles failed", "wrestler_id", wrestlerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]titleDTO, 0, len(items))
	for _, item := range items {
		out = append(out, titleToDTO(ctx, item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func titleToDTO(ctx context.Context, v title.Title) titleDTO {
	ctx, span := startSpan(ctx, "httpapi.titleToDTO")
	defer span.End()

	return titleDTO{
		ID:           v.ID,
		Name:         v.Name,
		Type:         string(v.Type),
		Division:     v.Division,
		PrestigeTier: v.PrestigeTier,
		Gender:       string(v.Gender),
		ShowID:       v.ShowID,
		IsActive:     v.IsActive,
	}
}

func holderToDTO(ctx context.Context, v usecase.HolderInfo) holderDTO {
	ctx, span := startSpan(ctx, "httpapi.holderToDTO")
	defer span.End()

	return holderDTO{
		WrestlerID:   v.Reign.WrestlerID,
		WrestlerName: v.WrestlerName,
		HeldSince:    formatTimeUTC(v.Reign.HeldSince),
		DaysHeld:     v.DaysHeld,
		EventName:    v.Reign.EventName,
		ChangeMethod: string(v.Reign.ChangeMethod),
	}
}

func reignToDTO(ctx context.Context, v reign.Reign) reignDTO {
	ctx, span := startSpan(ctx, "httpapi.reignToDTO")
	defer span.End()

	out := reignDTO{
		ID:            v.ID,
		TitleID:       v.TitleID,
		WrestlerID:    v.WrestlerID,
		HeldSince:     formatTimeUTC(v.HeldSince),
		EventName:     v.EventName,
		EventLocation: v.EventLocation,
		ChangeMethod:  string(v.ChangeMethod),
	}
	if v.HeldUntil != nil {
		out.HeldUntil = formatTimeUTC(*v.HeldUntil)
	}
	return out
}

func titleListToDTO(ctx context.Context, items []usecase.TitleWithHolders) []titleWithHoldersDTO {
	ctx, span := startSpan(ctx, "httpapi.titleListToDTO")
	defer span.End()

	out := make([]titleWithHoldersDTO, 0, len(items))
	for _, item := range items {
		holders := make([]holderDTO, 0, len(item.CurrentHolders))
		for _, holder := range item.CurrentHolders {
			holders = append(holders, holderToDTO(ctx, holder))
		}
		out = append(out, titleWithHoldersDTO{
			Title:          titleToDTO(ctx, item.Title),
			CurrentHolders: holders,
			DaysHeld:       item.DaysHeld,
		})
	}
	return out
}
