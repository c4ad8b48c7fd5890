package screen

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jkweon/txscreen/internal/importer"
	"github.com/jkweon/txscreen/internal/merge"
	"github.com/jkweon/txscreen/internal/pipeline"
	"github.com/jkweon/txscreen/internal/record"
	"github.com/jkweon/txscreen/internal/screening"
)

type Handler struct {
	importSvc *importer.Service
	pipe      *pipeline.Pipeline
	screenSvc *screening.Service
}

func NewHandler(importSvc *importer.Service, pipe *pipeline.Pipeline, screenSvc *screening.Service) *Handler {
	return &Handler{
		importSvc: importSvc,
		pipe:      pipe,
		screenSvc: screenSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.screen)
	r.Get("/", h.listRuns)
	r.Get("/{id}/records", h.listRecords)
}

type runResponse struct {
	ID          uuid.UUID `json:"id"`
	RecordCount int       `json:"record_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type recordResponse struct {
	ID            uuid.UUID `json:"id"`
	Institution   string    `json:"institution"`
	AccountNo     string    `json:"account_no"`
	Date          string    `json:"date"`
	Time          string    `json:"time,omitempty"`
	Deposit       int64     `json:"deposit"`
	Withdrawal    int64     `json:"withdrawal"`
	Cancel        string    `json:"cancel,omitempty"`
	Description   string    `json:"description"`
	Keyword       string    `json:"keyword,omitempty"`
	Category      string    `json:"category"`
	BizRegNo      string    `json:"biz_reg_no,omitempty"`
	IndustryCode  string    `json:"industry_code,omitempty"`
	IndustryClass string    `json:"industry_class,omitempty"`
	RiskKeyword   string    `json:"risk_keyword,omitempty"`
	RiskClass     string    `json:"risk_class,omitempty"`
	RiskScore     string    `json:"risk_score"`
}

type screenResponse struct {
	Run     runResponse      `json:"run"`
	Records []recordResponse `json:"records"`
}

// screen accepts a multipart upload with optional "bank" and "card" CSV
// files, runs the full pipeline over them, and persists the result as a
// new run. At least one file must be present.
func (h *Handler) screen(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	var (
		banks []merge.BankRow
		cards []merge.CardRow
	)

	if file, _, err := r.FormFile(string(importer.SourceBank)); err == nil {
		defer file.Close()

		banks, err = h.importSvc.ParseBank(file)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	if file, _, err := r.FormFile(string(importer.SourceCard)); err == nil {
		defer file.Close()

		cards, err = h.importSvc.ParseCard(file)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	if len(banks) == 0 && len(cards) == 0 {
		http.Error(w, "at least one of bank or card file is required", http.StatusBadRequest)
		return
	}

	records, err := h.pipe.Run(r.Context(), banks, cards)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	run, err := h.screenSvc.SaveRun(r.Context(), records)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := screenResponse{
		Run:     toRunResponse(run),
		Records: toRecordResponses(records),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := h.screenSvc.Runs(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]runResponse, 0, len(runs))
	for _, run := range runs {
		resp = append(resp, toRunResponse(run))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid run id", http.StatusBadRequest)
		return
	}

	records, err := h.screenSvc.Records(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toRecordResponses(records)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toRunResponse(run *screening.Run) runResponse {
	return runResponse{
		ID:          run.ID,
		RecordCount: run.RecordCount,
		CreatedAt:   run.CreatedAt,
	}
}

func toRecordResponses(records []*record.Record) []recordResponse {
	resp := make([]recordResponse, 0, len(records))

	for _, rec := range records {
		resp = append(resp, recordResponse{
			ID:            rec.ID,
			Institution:   rec.Institution,
			AccountNo:     rec.AccountNo,
			Date:          rec.Date,
			Time:          rec.Time,
			Deposit:       rec.Deposit,
			Withdrawal:    rec.Withdrawal,
			Cancel:        string(rec.Cancel),
			Description:   rec.Description,
			Keyword:       rec.Keyword,
			Category:      rec.Category,
			BizRegNo:      rec.BizRegNo,
			IndustryCode:  rec.IndustryCode,
			IndustryClass: rec.IndustryClass,
			RiskKeyword:   rec.RiskKeyword,
			RiskClass:     rec.RiskClass,
			RiskScore:     rec.RiskScore.String(),
		})
	}

	return resp
}
