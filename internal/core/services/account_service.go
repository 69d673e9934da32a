package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sgcontabil/sgc_backend/internal/apperrors"
	"github.com/sgcontabil/sgc_backend/internal/core/domain"
	portsrepo "github.com/sgcontabil/sgc_backend/internal/core/ports/repositories"
	portssvc "github.com/sgcontabil/sgc_backend/internal/core/ports/services"
	"github.com/sgcontabil/sgc_backend/internal/dto"
	"github.com/sgcontabil/sgc_backend/internal/middleware"
)

type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates the chart-of-accounts directory service.
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// resolveParent validates the optional parent reference; pointing an account
// at itself or at a missing row is a validation error.
func (s *accountService) resolveParent(ctx context.Context, parentID *string, selfID string) (string, error) {
	if parentID == nil || *parentID == "" {
		return "", nil
	}
	if *parentID == selfID {
		return "", fmt.Errorf("%w: conta não pode ser pai dela mesma", apperrors.ErrValidation)
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, *parentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("%w: conta pai %s não encontrada", apperrors.ErrValidation, *parentID)
		}
		return "", err
	}
	return *parentID, nil
}

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateContaRequest, creatorUserID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !domain.ValidAccountType(domain.AccountType(req.Tipo)) {
		return nil, fmt.Errorf("%w: tipo de conta inválido: %s", apperrors.ErrValidation, req.Tipo)
	}
	if !domain.ValidBalanceNature(domain.BalanceNature(req.Natureza)) {
		return nil, fmt.Errorf("%w: natureza inválida: %s", apperrors.ErrValidation, req.Natureza)
	}
	if req.Nivel < 1 {
		return nil, fmt.Errorf("%w: nível deve ser maior ou igual a 1", apperrors.ErrValidation)
	}

	// Pre-check gives a friendly error; the unique index on codigo is the
	// authoritative guard against the read-then-write race.
	if _, err := s.accountRepo.FindAccountByCode(ctx, req.Codigo); err == nil {
		return nil, fmt.Errorf("%w: conta com código %s já existe", apperrors.ErrDuplicate, req.Codigo)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	parentID, err := s.resolveParent(ctx, req.ContaPaiID, "")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		Code:            req.Codigo,
		Description:     req.Descricao,
		Type:            domain.AccountType(req.Tipo),
		Nature:          domain.BalanceNature(req.Natureza),
		Level:           req.Nivel,
		ParentAccountID: parentID,
		AllowsPosting:   req.PermiteLancamento,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("codigo", req.Codigo))
		}
		return nil, err
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("codigo", account.Code))
	return &account, nil
}

func (s *accountService) GetAccountDetail(ctx context.Context, accountID string) (*portssvc.AccountDetail, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}

	detail := &portssvc.AccountDetail{Account: *account}

	if account.ParentAccountID != "" {
		parent, err := s.accountRepo.FindAccountByID(ctx, account.ParentAccountID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		detail.Parent = parent
	}

	children, err := s.accountRepo.FindChildAccounts(ctx, accountID)
	if err != nil {
		return nil, err
	}
	detail.Children = children

	return detail, nil
}

func (s *accountService) ListAccounts(ctx context.Context, params dto.ListContasParams) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if params.Tipo != "" && !domain.ValidAccountType(domain.AccountType(params.Tipo)) {
		return nil, fmt.Errorf("%w: tipo de conta inválido: %s", apperrors.ErrValidation, params.Tipo)
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, portsrepo.AccountFilter{
		Active: params.Ativo,
		Type:   domain.AccountType(params.Tipo),
	})
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()))
		return nil, err
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateContaRequest, updaterUserID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if !domain.ValidAccountType(domain.AccountType(req.Tipo)) {
		return nil, fmt.Errorf("%w: tipo de conta inválido: %s", apperrors.ErrValidation, req.Tipo)
	}
	if !domain.ValidBalanceNature(domain.BalanceNature(req.Natureza)) {
		return nil, fmt.Errorf("%w: natureza inválida: %s", apperrors.ErrValidation, req.Natureza)
	}
	if req.Nivel < 1 {
		return nil, fmt.Errorf("%w: nível deve ser maior ou igual a 1", apperrors.ErrValidation)
	}

	if req.Codigo != existing.Code {
		other, err := s.accountRepo.FindAccountByCode(ctx, req.Codigo)
		if err == nil && other.AccountID != accountID {
			return nil, fmt.Errorf("%w: conta com código %s já existe", apperrors.ErrDuplicate, req.Codigo)
		}
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
	}

	parentID, err := s.resolveParent(ctx, req.ContaPaiID, accountID)
	if err != nil {
		return nil, err
	}

	isActive := existing.IsActive
	if req.Ativo != nil {
		isActive = *req.Ativo
	}
	if existing.IsActive && !isActive {
		// Referential guard: accounts already referenced by journal lines
		// keep their history and stay active.
		count, err := s.accountRepo.CountLinesByAccountID(ctx, accountID)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, fmt.Errorf("%w: conta possui %d partidas lançadas e não pode ser desativada", apperrors.ErrValidation, count)
		}
	}

	updated := *existing
	updated.Code = req.Codigo
	updated.Description = req.Descricao
	updated.Type = domain.AccountType(req.Tipo)
	updated.Nature = domain.BalanceNature(req.Natureza)
	updated.Level = req.Nivel
	updated.ParentAccountID = parentID
	updated.AllowsPosting = req.PermiteLancamento
	updated.IsActive = isActive
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = updaterUserID

	if err := s.accountRepo.UpdateAccount(ctx, updated); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to update account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}

	logger.Info("Account updated", slog.String("account_id", accountID))
	return &updated, nil
}

func (s *accountService) GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	return s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
}
