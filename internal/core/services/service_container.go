package services

import (
	portsrepo "github.com/sgcontabil/sgc_backend/internal/core/ports/repositories"
	portssvc "github.com/sgcontabil/sgc_backend/internal/core/ports/services"
)

// NewServiceContainer wires every service against the repository provider.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	accountSvc := NewAccountService(repos.AccountRepo)
	return &portssvc.ServiceContainer{
		Account: accountSvc,
		Entry:   NewEntryService(repos.EntryRepo, accountSvc),
		User:    NewUserService(repos.UserRepo),
	}
}
