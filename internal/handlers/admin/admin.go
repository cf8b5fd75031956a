package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fanvault/payments/internal/domain"
	"github.com/fanvault/payments/internal/dto"
	"github.com/fanvault/payments/internal/failover"
	"github.com/fanvault/payments/internal/scheduler"
	"github.com/fanvault/payments/internal/service/feeservice"
	"github.com/fanvault/payments/internal/service/reconcileservice"
	"github.com/fanvault/payments/pkg/utils"
)

type FeeService interface {
	GrantEliteFounding(ctx context.Context, creatorID string, feePercent int64) (*domain.CreatorProfile, error)
	RecalculateAll(ctx context.Context) (*feeservice.TierReport, error)
}

type ReconcileService interface {
	SelfAudit(ctx context.Context) (*reconcileservice.Report, error)
	AuditPayouts(ctx context.Context) (*reconcileservice.PayoutReport, error)
}

type TaskRunner interface {
	ExecuteTask(ctx context.Context, name string) error
}

type FailoverQueue interface {
	RetryNow(ctx context.Context, id string) (*domain.FailoverRecord, error)
	List(ctx context.Context, status domain.FailoverStatus, limit int) ([]domain.FailoverRecord, error)
}

type AuditLog interface {
	Query(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, error)
	Summary(ctx context.Context) (*domain.AuditSummary, error)
}

type AdminHandler struct {
	feeService       FeeService
	reconcileService ReconcileService
	tasks            TaskRunner
	queue            FailoverQueue
	audit            AuditLog
}

func New(feeService FeeService, reconcileService ReconcileService, tasks TaskRunner, queue FailoverQueue, audit AuditLog) *AdminHandler {
	return &AdminHandler{
		feeService:       feeService,
		reconcileService: reconcileService,
		tasks:            tasks,
		queue:            queue,
		audit:            audit,
	}
}

// GrantElite godoc
//
//	@Summary		Grant the elite founding fee override
//	@Description	Permanently lock the creator fee percentage. The lock is one-way; a second grant never changes an already locked profile.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			creatorID	path		string						true	"Creator id"
//	@Param			request		body		dto.GrantEliteRequestDTO	true	"Override payload, zero fee_percent means the default"
//	@Success		200			{object}	dto.EliteProfileResponseDTO	"Locked profile"
//	@Failure		400			{object}	utils.Response				"Invalid fee percentage"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/creators/{creatorID}/elite [post]
func (h *AdminHandler) GrantElite(w http.ResponseWriter, r *http.Request) {
	creatorID := chi.URLParam(r, "creatorID")

	var req dto.GrantEliteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.feeService.GrantEliteFounding(r.Context(), creatorID, req.FeePercent)
	if err != nil {
		switch {
		case errors.Is(err, feeservice.ErrInvalidFeePercent):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.EliteProfileResponseDTO{
		CreatorID:   profile.CreatorID,
		FeePercent:  profile.LockedFeePercentage,
		EliteLocked: profile.EliteFoundingLocked,
	})
}

// RecalculateTiers godoc
//
//	@Summary		Recompute fee tiers for all creators
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	feeservice.TierReport	"Tier report"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/tiers/recalculate [post]
func (h *AdminHandler) RecalculateTiers(w http.ResponseWriter, r *http.Request) {
	report, err := h.feeService.RecalculateAll(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}

// Reconciliation godoc
//
//	@Summary		Run the ledger self audit
//	@Description	Re-derive creator earnings for every completed transaction and report conservation discrepancies with platform wide totals.
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	reconcileservice.Report	"Reconciliation report"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/reconciliation [get]
func (h *AdminHandler) Reconciliation(w http.ResponseWriter, r *http.Request) {
	report, err := h.reconcileService.SelfAudit(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}

// ReconcilePayouts godoc
//
//	@Summary		Cross check payouts against provider transfers
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	reconcileservice.PayoutReport	"Payout reconciliation report"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/reconciliation/payouts [get]
func (h *AdminHandler) ReconcilePayouts(w http.ResponseWriter, r *http.Request) {
	report, err := h.reconcileService.AuditPayouts(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}

// ExecuteTask godoc
//
//	@Summary		Run a scheduled task on demand
//	@Description	Run one of the named scheduled tasks immediately, through the same cross instance lease the scheduler uses.
//	@Tags			Admin
//	@Produce		json
//	@Param			name	path		string						true	"Task name"
//	@Success		200		{object}	dto.ExecuteTaskResponseDTO	"Task completed"
//	@Failure		404		{object}	utils.Response				"Unknown task"
//	@Failure		500		{object}	utils.Response				"Task failed"
//	@Router			/api/admin/tasks/{name} [post]
func (h *AdminHandler) ExecuteTask(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := h.tasks.ExecuteTask(r.Context(), name); err != nil {
		switch {
		case errors.Is(err, scheduler.ErrUnknownTask):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ExecuteTaskResponseDTO{Task: name, Status: "completed"})
}

// RetryFailover godoc
//
//	@Summary		Manually retry a failover record
//	@Description	One attempt for the record, bypassing the retry count gate. A failed attempt leaves the record untouched.
//	@Tags			Admin
//	@Produce		json
//	@Param			recordID	path		string							true	"Failover record id"
//	@Success		200			{object}	dto.FailoverRecordResponseDTO	"Record resolved"
//	@Failure		404			{object}	utils.Response					"Record not found"
//	@Failure		409			{object}	utils.Response					"Record already succeeded"
//	@Failure		502			{object}	utils.Response					"Retry attempt failed"
//	@Router			/api/admin/failover/{recordID}/retry [post]
func (h *AdminHandler) RetryFailover(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, "recordID")

	record, err := h.queue.RetryNow(r.Context(), recordID)
	if err != nil {
		switch {
		case errors.Is(err, failover.ErrRecordNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, failover.ErrAlreadySucceeded):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusBadGateway, err.Error())
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toFailoverDTO(record))
}

// ListFailover godoc
//
//	@Summary		List failover records
//	@Tags			Admin
//	@Produce		json
//	@Param			status	query		string							false	"Status filter (pending, success, failed)"
//	@Param			limit	query		int								false	"Max rows to return"
//	@Success		200		{array}		dto.FailoverRecordResponseDTO	"Failover records"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/failover [get]
func (h *AdminHandler) ListFailover(w http.ResponseWriter, r *http.Request) {
	status := domain.FailoverStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = domain.FailoverPending
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	records, err := h.queue.List(r.Context(), status, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.FailoverRecordResponseDTO, len(records))
	for i, record := range records {
		response[i] = toFailoverDTO(&record)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// QueryAudit godoc
//
//	@Summary		Query the audit log
//	@Tags			Admin
//	@Produce		json
//	@Param			level		query		string				false	"Level filter (DEBUG, INFO, WARN, ERROR, CRITICAL)"
//	@Param			operation	query		string				false	"Operation filter"
//	@Param			creator_id	query		string				false	"Creator filter"
//	@Param			status		query		string				false	"Status filter"
//	@Param			from		query		string				false	"RFC3339 lower bound"
//	@Param			to			query		string				false	"RFC3339 upper bound"
//	@Param			limit		query		int					false	"Max rows to return"
//	@Success		200			{array}		domain.AuditEntry	"Matching entries, newest first"
//	@Failure		400			{object}	utils.Response		"Invalid time bound"
//	@Failure		500			{object}	utils.Response		"Internal server error"
//	@Router			/api/admin/audit [get]
func (h *AdminHandler) QueryAudit(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.AuditFilter{
		Level:     domain.LogLevel(query.Get("level")),
		Operation: query.Get("operation"),
		CreatorID: query.Get("creator_id"),
		Status:    query.Get("status"),
	}
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))

	for name, target := range map[string]*time.Time{"from": &filter.From, "to": &filter.To} {
		raw := query.Get(name)
		if raw == "" {
			continue
		}
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid "+name+" bound, expected RFC3339")
			return
		}
		*target = parsed
	}

	entries, err := h.audit.Query(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, entries)
}

// AuditSummary godoc
//
//	@Summary		Summarize the audit log
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	domain.AuditSummary	"Counts by level and status plus 24h error rates"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/admin/audit/summary [get]
func (h *AdminHandler) AuditSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.audit.Summary(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, summary)
}

func toFailoverDTO(record *domain.FailoverRecord) dto.FailoverRecordResponseDTO {
	return dto.FailoverRecordResponseDTO{
		ID:            record.ID,
		OperationKind: string(record.OperationKind),
		Status:        string(record.Status),
		RetryCount:    record.RetryCount,
		MaxRetries:    record.MaxRetries,
		CreatedAt:     record.CreatedAt,
		ResolvedAt:    record.ResolvedAt,
	}
}
