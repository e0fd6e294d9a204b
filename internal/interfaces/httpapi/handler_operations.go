package httpapi

import (
	"net/http"
)

type importPromotionRequest struct {
	Promotion string `json:"promotion" validate:"required,max=100"`
	ShowID    int64  `json:"showId" validate:"omitempty,gt=0"`
}

type dashboardDTO struct {
	WrestlerCount int                  `json:"wrestlerCount"`
	ShowCount     int                  `json:"showCount"`
	TitleCount    int                  `json:"titleCount"`
	VacantTitles  []titleDTO           `json:"vacantTitles"`
	LongestReign  *holderDTO           `json:"longestReign,omitempty"`
	RosterDepth   []showRosterDepthDTO `json:"rosterDepth"`
}

type showRosterDepthDTO struct {
	Show  showDTO `json:"show"`
	Count int     `json:"count"`
}

type importResultDTO struct {
	Promotion  string   `json:"promotion"`
	Imported   int      `json:"imported"`
	Skipped    int      `json:"skipped"`
	Failed     int      `json:"failed"`
	Failures   []string `json:"failures,omitempty"`
	DurationMS int64    `json:"durationMs"`
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	dashboard, err := h.dashboardService.Get(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get dashboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	vacant := make([]titleDTO, 0, len(dashboard.VacantTitles))
	for _, item := range dashboard.VacantTitles {
		vacant = append(vacant, titleToDTO(ctx, item))
	}

	depth := make([]showRosterDepthDTO, 0, len(dashboard.RosterDepth))
	for _, item := range dashboard.RosterDepth {
		depth = append(depth, showRosterDepthDTO{
			Show:  showToDTO(ctx, item.Show),
			Count: item.Count,
		})
	}

	out := dashboardDTO{
		WrestlerCount: dashboard.WrestlerCount,
		ShowCount:     dashboard.ShowCount,
		TitleCount:    dashboard.TitleCount,
		VacantTitles:  vacant,
		RosterDepth:   depth,
	}
	if dashboard.LongestReign != nil {
		holder := holderToDTO(ctx, *dashboard.LongestReign)
		out.LongestReign = &holder
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ImportPromotionRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportPromotionRoster")
	defer span.End()

	var req importPromotionRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.importService.ImportPromotion(ctx, req.Promotion, req.ShowID)
	if err != nil {
		h.logger.WarnContext(ctx, "import promotion roster failed", "promotion", req.Promotion, "error", err)
		writeError(ctx, w, err)
		return
	}

	failures := make([]string, 0, len(result.Failures))
	for _, failure := range result.Failures {
		failures = append(failures, failure.Name+": "+failure.Reason)
	}

	writeSuccess(ctx, w, http.StatusOK, importResultDTO{
		Promotion:  result.Promotion,
		Imported:   result.Imported,
		Skipped:    result.Skipped,
		Failed:     result.Failed,
		Failures:   failures,
		DurationMS: result.Duration.Milliseconds(),
	})
}
