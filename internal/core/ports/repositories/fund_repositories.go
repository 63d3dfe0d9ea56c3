package repositories

import (
	"context"

	"github.com/caixinha-app/caixinha_backend/internal/core/domain"
)

// FundReader defines read operations for fund data.
type FundReader interface {
	// FindFundByID retrieves a specific fund by its ID.
	FindFundByID(ctx context.Context, fundID string) (*domain.Fund, error)

	// ListFunds retrieves all funds in creation order.
	ListFunds(ctx context.Context) ([]domain.Fund, error)
}

// FundWriter defines write operations for fund data.
type FundWriter interface {
	// SaveFund persists a new fund.
	SaveFund(ctx context.Context, fund domain.Fund) error

	// MutateFund applies mutate to the stored fund under the store lock,
	// so one command is one consistent state update. If mutate returns an
	// error the fund is left exactly as it was.
	MutateFund(ctx context.Context, fundID string, mutate func(*domain.Fund) error) error
}

// FundRepositoryFacade combines all fund-related repository interfaces.
type FundRepositoryFacade interface {
	FundReader
	FundWriter
}
