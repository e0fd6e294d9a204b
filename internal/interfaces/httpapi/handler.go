package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/ringbookhq/ringbook/internal/platform/logging"
	"github.com/ringbookhq/ringbook/internal/usecase"
)

type Handler struct {
	wrestlerService     *usecase.WrestlerService
	showService         *usecase.ShowService
	titleService        *usecase.TitleService
	championshipService *usecase.ChampionshipService
	rosterService       *usecase.RosterService
	dashboardService    *usecase.DashboardService
	importService       *usecase.ImportService
	logger              *logging.Logger
	validator           *validator.Validate
}

func NewHandler(
	wrestlerService *usecase.WrestlerService,
	showService *usecase.ShowService,
	titleService *usecase.TitleService,
	championshipService *usecase.ChampionshipService,
	rosterService *usecase.RosterService,
	dashboardService *usecase.DashboardService,
	importService *usecase.ImportService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		wrestlerService:     wrestlerService,
		showService:         showService,
		titleService:        titleService,
		championshipService: championshipService,
		rosterService:       rosterService,
		dashboardService:    dashboardService,
		importService:       importService,
		logger:              logger,
		validator:           validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func decodeJSON(body io.Reader, target any) error {
	decoder := jsoniter.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func formatTimeUTC(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}
