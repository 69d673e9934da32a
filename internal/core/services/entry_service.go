package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sgcontabil/sgc_backend/internal/apperrors"
	"github.com/sgcontabil/sgc_backend/internal/core/domain"
	portsrepo "github.com/sgcontabil/sgc_backend/internal/core/ports/repositories"
	portssvc "github.com/sgcontabil/sgc_backend/internal/core/ports/services"
	"github.com/sgcontabil/sgc_backend/internal/dto"
	"github.com/sgcontabil/sgc_backend/internal/middleware"
	"github.com/sgcontabil/sgc_backend/internal/utils/pagination"
)

// balanceTolerance absorbs rounding in externally supplied legacy amounts.
// Internal arithmetic is exact decimal; the tolerance only widens acceptance.
var balanceTolerance = decimal.NewFromFloat(0.01)

type entryService struct {
	entryRepo  portsrepo.EntryRepositoryFacade
	accountSvc portssvc.AccountSvcFacade
}

// NewEntryService creates the journal entry service (posting validation plus
// the approve/reject/reverse lifecycle).
func NewEntryService(entryRepo portsrepo.EntryRepositoryFacade, accountSvc portssvc.AccountSvcFacade) portssvc.EntrySvcFacade {
	return &entryService{entryRepo: entryRepo, accountSvc: accountSvc}
}

var _ portssvc.EntrySvcFacade = (*entryService)(nil)

// validateLines resolves every referenced account and checks each line's
// side, amount and posting eligibility. Returns the resolved accounts so
// callers don't fetch twice.
func (s *entryService) validateLines(ctx context.Context, partidas []dto.CreatePartidaRequest) (map[string]domain.Account, error) {
	accountIDs := make([]string, 0, len(partidas))
	seen := make(map[string]struct{}, len(partidas))
	for _, p := range partidas {
		if _, ok := seen[p.ContaID]; !ok {
			seen[p.ContaID] = struct{}{}
			accountIDs = append(accountIDs, p.ContaID)
		}
	}

	accounts, err := s.accountSvc.GetAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return nil, err
	}

	for _, p := range partidas {
		if !domain.ValidLineSide(domain.LineSide(p.Tipo)) {
			return nil, fmt.Errorf("%w: tipo de partida inválido: %s", apperrors.ErrValidation, p.Tipo)
		}
		if !p.Valor.IsPositive() {
			return nil, fmt.Errorf("%w: valor da partida deve ser positivo", apperrors.ErrValidation)
		}
		account, ok := accounts[p.ContaID]
		if !ok {
			return nil, fmt.Errorf("%w: conta %s não encontrada", apperrors.ErrValidation, p.ContaID)
		}
		if !account.IsActive {
			return nil, fmt.Errorf("%w: conta %s está inativa", apperrors.ErrValidation, account.Code)
		}
		if !account.AllowsPosting {
			return nil, fmt.Errorf("%w: conta %s não permite lançamentos", apperrors.ErrValidation, account.Code)
		}
	}
	return accounts, nil
}

// checkBalance verifies |Σdebit − Σcredit| over the full unrounded line set.
func checkBalance(partidas []dto.CreatePartidaRequest) error {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, p := range partidas {
		switch domain.LineSide(p.Tipo) {
		case domain.SideDebit:
			totalDebit = totalDebit.Add(p.Valor)
		case domain.SideCredit:
			totalCredit = totalCredit.Add(p.Valor)
		}
	}
	if totalDebit.Sub(totalCredit).Abs().GreaterThan(balanceTolerance) {
		return fmt.Errorf("%w: débitos %s e créditos %s não conferem", apperrors.ErrUnbalanced, totalDebit.StringFixed(2), totalCredit.StringFixed(2))
	}
	return nil
}

func (s *entryService) CreateEntry(ctx context.Context, req dto.CreateLancamentoRequest, creatorUserID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !domain.ValidEntryType(domain.EntryType(req.TipoLancamento)) {
		return nil, fmt.Errorf("%w: tipo de lançamento inválido: %s", apperrors.ErrValidation, req.TipoLancamento)
	}
	if len(req.Partidas) < 2 {
		return nil, fmt.Errorf("%w: lançamento exige pelo menos duas partidas", apperrors.ErrValidation)
	}
	if !req.Valor.IsPositive() {
		return nil, fmt.Errorf("%w: valor do lançamento deve ser positivo", apperrors.ErrValidation)
	}

	// Friendly pre-check; the unique index on numero_lancamento closes the
	// read-then-write race between concurrent submissions.
	if _, err := s.entryRepo.FindEntryByNumber(ctx, req.NumeroLancamento); err == nil {
		return nil, fmt.Errorf("%w: lançamento número %s já existe", apperrors.ErrDuplicate, req.NumeroLancamento)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if _, err := s.validateLines(ctx, req.Partidas); err != nil {
		return nil, err
	}
	if err := checkBalance(req.Partidas); err != nil {
		return nil, err
	}

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	entry := domain.JournalEntry{
		EntryID:     uuid.NewString(),
		EntryNumber: req.NumeroLancamento,
		PostingDate: req.DataLancamento.Time,
		AccrualDate: req.DataCompetencia.Time,
		EntryType:   domain.EntryType(req.TipoLancamento),
		Narrative:   req.Historico,
		Amount:      req.Valor,
		Origin:      req.Origem,
		OriginID:    req.OrigemID,
		Status:      domain.StatusPending,
		AuditFields: audit,
	}

	lines := make([]domain.JournalLine, len(req.Partidas))
	for i, p := range req.Partidas {
		lines[i] = domain.JournalLine{
			LineID:       uuid.NewString(),
			EntryID:      entry.EntryID,
			AccountID:    p.ContaID,
			CostCenterID: p.CentroCustoID,
			Side:         domain.LineSide(p.Tipo),
			Amount:       p.Valor,
			Memo:         p.HistoricoComplementar,
			AuditFields:  audit,
		}
	}

	if err := s.entryRepo.SaveEntry(ctx, entry, lines); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save entry", slog.String("error", err.Error()), slog.String("numero", entry.EntryNumber))
		}
		return nil, err
	}

	logger.Info("Entry created", slog.String("entry_id", entry.EntryID), slog.String("numero", entry.EntryNumber))
	return &entry, nil
}

func (s *entryService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	lines, err := s.entryRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	entry.Lines = lines
	return entry, nil
}

func (s *entryService) ListEntries(ctx context.Context, params dto.ListLancamentosParams) (*dto.ListLancamentosResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	filter := portsrepo.EntryFilter{
		AccountID: params.ContaID,
	}
	if params.DataInicio != "" {
		from, err := dto.ParseDateOnly(params.DataInicio)
		if err != nil {
			return nil, fmt.Errorf("%w: data_inicio inválida: %s", apperrors.ErrValidation, params.DataInicio)
		}
		filter.DateFrom = &from.Time
	}
	if params.DataFim != "" {
		to, err := dto.ParseDateOnly(params.DataFim)
		if err != nil {
			return nil, fmt.Errorf("%w: data_fim inválida: %s", apperrors.ErrValidation, params.DataFim)
		}
		filter.DateTo = &to.Time
	}
	if params.Status != "" {
		switch domain.EntryStatus(params.Status) {
		case domain.StatusPending, domain.StatusApproved, domain.StatusRejected, domain.StatusReversed:
			filter.Status = domain.EntryStatus(params.Status)
		default:
			return nil, fmt.Errorf("%w: status inválido: %s", apperrors.ErrValidation, params.Status)
		}
	}
	if params.TipoLancamento != "" {
		if !domain.ValidEntryType(domain.EntryType(params.TipoLancamento)) {
			return nil, fmt.Errorf("%w: tipo_lancamento inválido: %s", apperrors.ErrValidation, params.TipoLancamento)
		}
		filter.EntryType = domain.EntryType(params.TipoLancamento)
	}

	page := pagination.Normalize(params.Page, params.Limit)
	filter.Limit = page.Size
	filter.Offset = page.Offset()

	entries, total, err := s.entryRepo.ListEntries(ctx, filter)
	if err != nil {
		logger.Error("Failed to list entries", slog.String("error", err.Error()))
		return nil, err
	}

	return &dto.ListLancamentosResponse{
		Sucesso:      true,
		Lancamentos:  dto.ToLancamentoResponses(entries),
		Total:        total,
		Pagina:       page.Number,
		TotalPaginas: pagination.TotalPages(total, page.Size),
	}, nil
}

func (s *entryService) Approve(ctx context.Context, entryID string, actorUserID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	audit := domain.EntryAuditEvent{
		AuditID:   uuid.NewString(),
		EntryID:   entryID,
		Action:    domain.AuditActionApprove,
		ActorID:   actorUserID,
		CreatedAt: time.Now(),
	}
	entry, err := s.entryRepo.TransitionStatus(ctx, entryID, domain.StatusPending, domain.StatusApproved, audit)
	if err != nil {
		return nil, err
	}
	logger.Info("Entry approved", slog.String("entry_id", entryID), slog.String("actor", actorUserID))
	return entry, nil
}

func (s *entryService) Reject(ctx context.Context, entryID string, reason string, actorUserID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if reason == "" {
		return nil, fmt.Errorf("%w: motivo da rejeição é obrigatório", apperrors.ErrValidation)
	}

	audit := domain.EntryAuditEvent{
		AuditID:   uuid.NewString(),
		EntryID:   entryID,
		Action:    domain.AuditActionReject,
		Reason:    reason,
		ActorID:   actorUserID,
		CreatedAt: time.Now(),
	}
	entry, err := s.entryRepo.TransitionStatus(ctx, entryID, domain.StatusPending, domain.StatusRejected, audit)
	if err != nil {
		return nil, err
	}
	logger.Info("Entry rejected", slog.String("entry_id", entryID), slog.String("actor", actorUserID))
	return entry, nil
}

// Reverse synthesizes the mirrored sibling of an approved entry. The original
// keeps its lines untouched and moves to ESTORNADO; the reversing entry is
// born APROVADO, a reversal being self-approving.
func (s *entryService) Reverse(ctx context.Context, entryID string, reason string, actorUserID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if reason == "" {
		return nil, fmt.Errorf("%w: motivo do estorno é obrigatório", apperrors.ErrValidation)
	}

	original, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if original.Status != domain.StatusApproved {
		return nil, fmt.Errorf("%w: apenas lançamentos APROVADOS podem ser estornados, status atual %s", apperrors.ErrConflict, original.Status)
	}

	originalLines, err := s.entryRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	auditFields := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: actorUserID,
	}

	originID := original.EntryID
	reversing := domain.JournalEntry{
		EntryID:     uuid.NewString(),
		EntryNumber: "E" + original.EntryNumber,
		PostingDate: now,
		AccrualDate: original.AccrualDate,
		EntryType:   domain.EntryTypeNormal,
		Narrative:   fmt.Sprintf("ESTORNO: %s - Motivo: %s", original.Narrative, reason),
		Amount:      original.Amount,
		Origin:      domain.OriginReversal,
		OriginID:    &originID,
		Status:      domain.StatusApproved,
		AuditFields: auditFields,
	}

	lines := make([]domain.JournalLine, len(originalLines))
	for i, l := range originalLines {
		lines[i] = domain.JournalLine{
			LineID:       uuid.NewString(),
			EntryID:      reversing.EntryID,
			AccountID:    l.AccountID,
			CostCenterID: l.CostCenterID,
			Side:         l.Side.Flip(),
			Amount:       l.Amount,
			Memo:         "ESTORNO: " + l.Memo,
			AuditFields:  auditFields,
		}
	}

	audit := domain.EntryAuditEvent{
		AuditID:   uuid.NewString(),
		EntryID:   original.EntryID,
		Action:    domain.AuditActionReverse,
		Reason:    reason,
		ActorID:   actorUserID,
		CreatedAt: now,
	}

	if err := s.entryRepo.SaveReversal(ctx, original.EntryID, reversing, lines, audit); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to save reversal", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return nil, err
	}

	reversing.Lines = lines
	logger.Info("Entry reversed", slog.String("entry_id", entryID), slog.String("reversing_entry_id", reversing.EntryID))
	return &reversing, nil
}

func (s *entryService) ListAuditEvents(ctx context.Context, entryID string) ([]domain.EntryAuditEvent, error) {
	if _, err := s.entryRepo.FindEntryByID(ctx, entryID); err != nil {
		return nil, err
	}
	events, err := s.entryRepo.ListAuditEvents(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []domain.EntryAuditEvent{}
	}
	return events, nil
}
