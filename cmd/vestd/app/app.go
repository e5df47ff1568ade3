package app

import (
	"context"
	"path/filepath"

	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/vested-one/vested"
	"github.com/vested-one/vested/app"
	"github.com/vested-one/vested/store/iavl"
	"github.com/vested-one/vested/x"
	"github.com/vested-one/vested/x/batch"
	"github.com/vested-one/vested/x/cash"
	"github.com/vested-one/vested/x/multisig"
	"github.com/vested-one/vested/x/sigs"
	"github.com/vested-one/vested/x/timelock"
	"github.com/vested-one/vested/x/utils"
	"github.com/vested-one/vested/x/vesting"
)

// Authenticator returns the authentication stack used to resolve the
// conditions behind a transaction.
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{}, multisig.Authenticate{})
}

// CashControl returns a controller for the token ledger.
func CashControl() cash.Controller {
	return cash.NewController()
}

// Chain returns a chain of decorators, to handle authentication,
// saving state, logging, and recovery.
func Chain(authFn x.Authenticator) app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		multisig.NewDecorator(),
		batch.NewDecorator(),
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns the message dispatcher with all paths registered.
func Router(authFn x.Authenticator, control cash.Controller) *app.Router {
	r := app.NewRouter()
	multisig.RegisterRoutes(r, authFn)
	timelock.RegisterRoutes(r, authFn, vesting.Authority{}, vesting.TimelockRules())
	vesting.RegisterRoutes(r, authFn, control)
	return r
}

// Stack wires up the decorator chain with the message dispatch.
func Stack() vested.Handler {
	authFn := Authenticator()
	return Chain(authFn).WithHandler(Router(authFn, CashControl()))
}

// CommitKVStore returns an initialized KVStore that persists the data
// to the named path.
func CommitKVStore(dbPath string) (vested.CommitKVStore, error) {
	// memory backend, only for testing
	if dbPath == "" {
		return iavl.MockCommitStore(), nil
	}

	// persistent backend
	dir := filepath.Dir(dbPath)
	name := filepath.Base(dbPath)
	return iavl.NewCommitStore(dir, name), nil
}

// Application constructs a basic ABCI application with the handler
// you provide.
func Application(name string, h vested.Handler, tx vested.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	base := app.NewStoreApp(name, kv, context.Background())
	return app.NewBaseApp(base, tx, h, debug), nil
}

// GenerateApp constructs the full application with the standard
// routing and genesis initializers, storing data under the home dir.
func GenerateApp(home string, logger log.Logger, debug bool) (abci.Application, error) {
	var dbPath string
	if home != "" {
		dbPath = filepath.Join(home, "vestd.db")
	}

	stack := Stack()
	application, err := Application("vestd", stack, TxDecoder, dbPath, debug)
	if err != nil {
		return nil, err
	}
	application.WithInit(app.ChainInitializers(
		&multisig.Initializer{},
		&cash.Initializer{},
		&vesting.Initializer{},
	))
	application.WithLogger(logger)
	return application, nil
}
