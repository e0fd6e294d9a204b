package httpapi

import (
	"context"
	"net/http"

	"github.com/ringbookhq/ringbook/internal/domain/wrestler"
	"github.com/ringbookhq/ringbook/internal/usecase"
)

type registerWrestlerRequest struct {
	Name      string           `json:"name" validate:"required,max=200"`
	Gender    string           `json:"gender" validate:"required"`
	RealName  string           `json:"realName" validate:"max=200"`
	Nickname  string           `json:"nickname" validate:"max=200"`
	Height    string           `json:"height" validate:"max=20"`
	Weight    string           `json:"weight" validate:"max=20"`
	DebutYear int              `json:"debutYear" validate:"omitempty,gte=1900,lte=2100"`
	Ratings   *powerRatingsDTO `json:"ratings"`
	Biography string           `json:"biography"`
}

type updateRatingsRequest struct {
	Ratings powerRatingsDTO `json:"ratings" validate:"required"`
}

type updateStatsRequest struct {
	Name   string `json:"name" validate:"max=200"`
	Wins   int    `json:"wins" validate:"gte=0"`
	Losses int    `json:"losses" validate:"gte=0"`
}

type updateBiographyRequest struct {
	Biography string `json:"biography"`
}

type powerRatingsDTO struct {
	Strength  int `json:"strength" validate:"gte=1,lte=10"`
	Speed     int `json:"speed" validate:"gte=1,lte=10"`
	Agility   int `json:"agility" validate:"gte=1,lte=10"`
	Stamina   int `json:"stamina" validate:"gte=1,lte=10"`
	Charisma  int `json:"charisma" validate:"gte=1,lte=10"`
	Technique int `json:"technique" validate:"gte=1,lte=10"`
}

type wrestlerDTO struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	Gender        string           `json:"gender"`
	Wins          int              `json:"wins"`
	Losses        int              `json:"losses"`
	RealName      string           `json:"realName,omitempty"`
	Nickname      string           `json:"nickname,omitempty"`
	Height        string           `json:"height,omitempty"`
	Weight        string           `json:"weight,omitempty"`
	DebutYear     int              `json:"debutYear,omitempty"`
	Ratings       *powerRatingsDTO `json:"ratings,omitempty"`
	Biography     string           `json:"biography,omitempty"`
	IsUserCreated bool             `json:"isUserCreated"`
}

func (h *Handler) ListWrestlers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListWrestlers")
	defer span.End()

	items, err := h.wrestlerService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list wrestlers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]wrestlerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, wrestlerToDTO(ctx, item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) RegisterWrestler(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterWrestler")
	defer span.End()

	var req registerWrestlerRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.RegisterWrestlerInput{
		Name:      req.Name,
		Gender:    req.Gender,
		RealName:  req.RealName,
		Nickname:  req.Nickname,
		Height:    req.Height,
		Weight:    req.Weight,
		DebutYear: req.DebutYear,
		Biography: req.Biography,
	}
	if req.Ratings != nil {
		input.Ratings = &wrestler.PowerRatings{
			Strength:  req.Ratings.Strength,
			Speed:     req.Ratings.Speed,
			Agility:   req.Ratings.Agility,
			Stamina:   req.Ratings.Stamina,
			Charisma:  req.Ratings.Charisma,
			Technique: req.Ratings.Technique,
		}
	}

	created, err := h.wrestlerService.Register(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "register wrestler failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, wrestlerToDTO(ctx, created))
}

func (h *Handler) GetWrestler(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetWrestler")
	defer span.End()

	wrestlerID, err := pathID(r, "wrestlerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.wrestlerService.Get(ctx, wrestlerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get wrestler failed", "wrestler_id", wrestlerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, wrestlerToDTO(ctx, item))
}

func (h *Handler) UpdateWrestlerRatings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateWrestlerRatings")
	defer span.End()

	wrestlerID, err := pathID(r, "wrestlerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateRatingsRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.wrestlerService.UpdatePowerRatings(ctx, wrestlerID, wrestler.PowerRatings{
		Strength:  req.Ratings.Strength,
		Speed:     req.Ratings.Speed,
		Agility:   req.Ratings.Agility,
		Stamina:   req.Ratings.Stamina,
		Charisma:  req.Ratings.Charisma,
		Technique: req.Ratings.Technique,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update wrestler ratings failed", "wrestler_id", wrestlerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, wrestlerToDTO(ctx, item))
}

func (h *Handler) UpdateWrestlerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateWrestlerStats")
	defer span.End()

	wrestlerID, err := pathID(r, "wrestlerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateStatsRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.wrestlerService.UpdateBasicStats(ctx, usecase.UpdateBasicStatsInput{
		WrestlerID: wrestlerID,
		Name:       req.Name,
		Wins:       req.Wins,
		Losses:     req.Losses,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update wrestler stats failed", "wrestler_id", wrestlerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, wrestlerToDTO(ctx, item))
}

func (h *Handler) UpdateWrestlerBiography(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateWrestlerBiography")
	defer span.End()

	wrestlerID, err := pathID(r, "wrestlerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateBiographyRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.wrestlerService.UpdateBiography(ctx, wrestlerID, req.Biography)
	if err != nil {
		h.logger.WarnContext(ctx, "update wrestler biography failed", "wrestler_id", wrestlerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, wrestlerToDTO(ctx, item))
}

func wrestlerToDTO(ctx context.Context, v wrestler.Wrestler) wrestlerDTO {
	ctx, span := startSpan(ctx, "httpapi.wrestlerToDTO")
	defer span.End()

	out := wrestlerDTO{
		ID:            v.ID,
		Name:          v.Name,
		Gender:        string(v.Gender),
		Wins:          v.Wins,
		Losses:        v.Losses,
		RealName:      v.RealName,
		Nickname:      v.Nickname,
		Height:        v.Height,
		Weight:        v.Weight,
		DebutYear:     v.DebutYear,
		Biography:     v.Biography,
		IsUserCreated: v.IsUserCreated,
	}
	if v.Ratings != (wrestler.PowerRatings{}) {
		out.Ratings = &powerRatingsDTO{
			Strength:  v.Ratings.Strength,
			Speed:     v.Ratings.Speed,
			Agility:   v.Ratings.Agility,
			Stamina:   v.Ratings.Stamina,
			Charisma:  v.Ratings.Charisma,
			Technique: v.Ratings.Technique,
		}
	}
	return out
}
