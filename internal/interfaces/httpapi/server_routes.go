package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerWrestlerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/wrestlers", handler.ListWrestlers)
	mux.HandleFunc("POST /v1/wrestlers", handler.RegisterWrestler)
	mux.HandleFunc("GET /v1/wrestlers/{wrestlerID}", handler.GetWrestler)
	mux.HandleFunc("PUT /v1/wrestlers/{wrestlerID}/ratings", handler.UpdateWrestlerRatings)
	mux.HandleFunc("PUT /v1/wrestlers/{wrestlerID}/stats", handler.UpdateWrestlerStats)
	mux.HandleFunc("PUT /v1/wrestlers/{wrestlerID}/biography", handler.UpdateWrestlerBiography)
	mux.HandleFunc("GET /v1/wrestlers/{wrestlerID}/titles", handler.ListWrestlerTitles)
	mux.HandleFunc("GET /v1/wrestlers/{wrestlerID}/assignable-titles", handler.ListAssignableTitles)
	mux.HandleFunc("GET /v1/wrestlers/{wrestlerID}/shows", handler.ListWrestlerShows)
}

func registerShowRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/shows", handler.ListShows)
	mux.HandleFunc("POST /v1/shows", handler.CreateShow)
	mux.HandleFunc("GET /v1/shows/{showID}", handler.GetShow)
	mux.HandleFunc("GET /v1/shows/{showID}/roster", handler.ListShowRoster)
	mux.HandleFunc("POST /v1/shows/{showID}/roster", handler.AssignWrestlerToShow)
	mux.HandleFunc("DELETE /v1/shows/{showID}/roster/{wrestlerID}", handler.RemoveWrestlerFromShow)
	mux.HandleFunc("GET /v1/shows/{showID}/titles", handler.ListShowTitles)
}

func registerTitleRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/titles", handler.ListTitles)
	mux.HandleFunc("POST /v1/titles", handler.CreateTitle)
	mux.HandleFunc("GET /v1/titles/unassigned", handler.ListUnassignedTitles)
	mux.HandleFunc("GET /v1/titles/{titleID}/holders", handler.ListTitleHolders)
	mux.HandleFunc("POST /v1/titles/{titleID}/holders", handler.AssignTitle)
	mux.HandleFunc("DELETE /v1/titles/{titleID}/holders", handler.VacateTitle)
	mux.HandleFunc("GET /v1/titles/{titleID}/history", handler.ListTitleHistory)
}

func registerOperationsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/dashboard", handler.GetDashboard)
	mux.HandleFunc("POST /v1/imports/promotions", handler.ImportPromotionRoster)
}
