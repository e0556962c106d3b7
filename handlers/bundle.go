package handlers

import (
	userRepoPkg "freelanceai/database/repository/user"
)

// HandlerBundle groups the endpoint handlers handed to route registration.
type HandlerBundle struct {
	// UserRepo backs the auth middleware's token checks.
	UserRepo userRepoPkg.Repository

	Listing   *ListingHandler
	Auth      *AuthHandler
	Payment   *PaymentHandler
	Assistant *AssistantHandler
	Project   *ProjectHandler
}
