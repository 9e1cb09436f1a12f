package handler

import (
	"net/http"
	"strconv"

	"finadvisor/internal/model"
	"finadvisor/internal/service"
	"finadvisor/internal/transport/rest/middleware"

	"github.com/gorilla/mux"
)

// ReportHandler handles recommendation report endpoints
type ReportHandler struct {
	synthesisSvc *service.SynthesisService
	progressSvc  *service.ProgressService
	profileSvc   *service.ProfileService
}

// NewReportHandler creates a new report handler
func NewReportHandler(synthesisSvc *service.SynthesisService, progressSvc *service.ProgressService, profileSvc *service.ProfileService) *ReportHandler {
	return &ReportHandler{
		synthesisSvc: synthesisSvc,
		progressSvc:  progressSvc,
		profileSvc:   profileSvc,
	}
}

// Generate handles POST /v1/advisors/{advisorId}/report. Synthesis never
// fails outright: an incomplete path or unreachable remote still yields a
// best-effort recommendation.
func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	advisorID := mux.Vars(r)["advisorId"]
	userID := middleware.GetUserID(r.Context())

	path := h.storedPath(r, advisorID)

	profile, err := h.profileSvc.Get(r.Context(), userID)
	if err != nil && err != service.ErrProfileNotFound {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	rec := h.synthesisSvc.Synthesize(r.Context(), advisorID, userID, path, profile)
	writeJSON(w, http.StatusOK, rec)
}

// Latest handles GET /v1/advisors/{advisorId}/report
func (h *ReportHandler) Latest(w http.ResponseWriter, r *http.Request) {
	advisorID := mux.Vars(r)["advisorId"]
	userID := middleware.GetUserID(r.Context())

	rec, err := h.synthesisSvc.Latest(r.Context(), userID, advisorID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "no recommendation for this advisor yet")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// History handles GET /v1/reports
func (h *ReportHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var limit int64
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			limit = n
		}
	}

	recs, err := h.synthesisSvc.History(r.Context(), userID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"recommendations": recs,
	})
}

func (h *ReportHandler) storedPath(r *http.Request, advisorID string) model.DecisionPath {
	record := h.progressSvc.Load(r.Context(), advisorID, middleware.GetUserID(r.Context()))
	if record == nil {
		return nil
	}
	return record.Path
}
