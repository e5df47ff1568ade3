package app

import (
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/vested-one/vested"
	"github.com/vested-one/vested/errors"
)

// BaseApp adds DeliverTx and CheckTx
// handlers to the storage and query functionality of StoreApp
type BaseApp struct {
	*StoreApp
	decoder vested.TxDecoder
	handler vested.Handler
	debug   bool
}

var _ abci.Application = BaseApp{}

// NewBaseApp constructs a basic abci application
func NewBaseApp(
	store *StoreApp,
	decoder vested.TxDecoder,
	handler vested.Handler,
	debug bool,
) BaseApp {
	return BaseApp{
		StoreApp: store,
		decoder:  decoder,
		handler:  handler,
		debug:    debug,
	}
}

// DeliverTx - ABCI - dispatches to the handler
func (b BaseApp) DeliverTx(txBytes []byte) abci.ResponseDeliverTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return vested.DeliverTxError(err, b.debug)
	}

	ctx := b.withLogInfo(b.BlockContext(), "call", "deliver_tx")
	res, err := b.handler.Deliver(ctx, b.DeliverStore(), tx)
	return vested.DeliverOrError(res, err, b.debug)
}

// CheckTx - ABCI - dispatches to the handler
func (b BaseApp) CheckTx(txBytes []byte) abci.ResponseCheckTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return vested.CheckTxError(err, b.debug)
	}

	ctx := b.withLogInfo(b.BlockContext(), "call", "check_tx")
	res, err := b.handler.Check(ctx, b.CheckStore(), tx)
	return vested.CheckOrError(res, err, b.debug)
}

// loadTx calls the decoder, and captures any panics
func (b BaseApp) loadTx(txBytes []byte) (tx vested.Tx, err error) {
	defer errors.Recover(&err)
	tx, err = b.decoder(txBytes)
	return
}

func (b BaseApp) withLogInfo(ctx vested.Context, keyvals ...interface{}) vested.Context {
	return vested.WithLogger(ctx, vested.GetLogger(ctx).With(keyvals...))
}
