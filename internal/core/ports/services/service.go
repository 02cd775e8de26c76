package services

// ServiceContainer bundles the service facades handed to the HTTP layer.
type ServiceContainer struct {
	Customer    CustomerSvcFacade
	Token       TokenSvcFacade
	Wallet      WalletSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
}
