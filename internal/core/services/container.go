package services

import (
	portsrepo "github.com/caixinha-app/caixinha_backend/internal/core/ports/repositories"
	portssvc "github.com/caixinha-app/caixinha_backend/internal/core/ports/services"
)

// NewContainer creates a service container with properly initialized
// dependencies. The navigation service doubles as the preferences service;
// both roles share the same state mutex.
func NewContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	navigation := NewNavigationService(repos.FundRepo)

	return &portssvc.ServiceContainer{
		Fund:        NewFundService(repos.FundRepo),
		Debt:        NewDebtService(repos.DebtRepo, repos.FundRepo),
		AccountView: NewAccountViewService(repos.FundRepo),
		Navigation:  navigation,
		Preferences: navigation,
	}
}
