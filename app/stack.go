package app

import (
	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/x"
	"github.com/keyper-labs/linera.dev/x/cash"
	"github.com/keyper-labs/linera.dev/x/multisig"
	"github.com/keyper-labs/linera.dev/x/sigs"
	"github.com/keyper-labs/linera.dev/x/utils"
)

// Authenticator returns the authentication used by all routes.
func Authenticator() x.Authenticator {
	return sigs.Authenticate{}
}

// Routes returns a router with all vault handlers registered.
func Routes(auth x.Authenticator) *Router {
	r := NewRouter()
	multisig.RegisterRoutes(r, auth, multisig.NewController(cash.NewController()))
	return r
}

// Chain returns the decorators every operation passes through, outermost
// first. Transactions without signatures are accepted, because the
// aggregated signature path authorizes itself. Every other route requires
// an owner signature.
func Chain() Decorators {
	return ChainDecorators(
		utils.NewRecovery(),
		utils.NewLogging(),
		utils.NewSavepoint(),
		sigs.NewDecorator().AllowMissingSigs(),
		utils.NewActionTagger(),
	)
}

// Stack returns the complete handler of the vault.
func Stack() linera.Handler {
	return Chain().WithHandler(Routes(Authenticator()))
}

// Initializers returns the genesis initializers, in the order they run.
func Initializers() linera.Initializer {
	return linera.ChainInitializers{
		cash.Initializer{},
		multisig.Initializer{},
	}
}
