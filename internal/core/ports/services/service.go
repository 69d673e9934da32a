package services

// ServiceContainer bundles the service facades handed to route registration.
type ServiceContainer struct {
	Account AccountSvcFacade
	Entry   EntrySvcFacade
	User    UserSvcFacade
}
