package vesting

import (
	"fmt"
	"math"

	"github.com/vested-one/vested"
	"github.com/vested-one/vested/errors"
	"github.com/vested-one/vested/x"
	"github.com/vested-one/vested/x/cash"
	"github.com/vested-one/vested/x/replay"
	"github.com/vested-one/vested/x/sigs"
)

const (
	createGrantCost = 200
	claimCost       = 150
	redeemCost      = 300
	sweepCost       = 100
	adminCost       = 100

	// ProofGuardNamespace scopes consumed burn proofs in the replay
	// guard, separate from multisig operation hashes.
	ProofGuardNamespace = "proof"
)

// PoolCondition is the module account holding all unvested value.
func PoolCondition() vested.Condition {
	return vested.NewCondition("vesting", "pool", []byte("treasury"))
}

// PoolAddress is where the pool condition's funds live.
func PoolAddress() vested.Address {
	return PoolCondition().Address()
}

// RegisterRoutes will instantiate and register all handlers in this package.
func RegisterRoutes(r vested.Registry, auth x.Authenticator, control cash.Controller) {
	ctrl := NewController()
	r.Handle(&CreateGrantMsg{}, CreateGrantHandler{auth, ctrl})
	r.Handle(&ClaimMsg{}, ClaimHandler{auth, ctrl, control})
	r.Handle(&ClaimOneMsg{}, ClaimOneHandler{auth, ctrl, control})
	r.Handle(&RedeemMsg{}, RedeemHandler{auth, ctrl, replay.NewGuard(ProofGuardNamespace)})
	r.Handle(&MarkExpiredMsg{}, MarkExpiredHandler{auth, ctrl})
	r.Handle(&RecoverExpiredMsg{}, RecoverExpiredHandler{auth, ctrl, control})
	r.Handle(&FundPoolMsg{}, FundPoolHandler{auth, ctrl, control})
	r.Handle(&RecoverSurplusMsg{}, RecoverSurplusHandler{auth, ctrl, control})
	r.Handle(&UpdateConfigurationMsg{}, UpdateConfigurationHandler{auth})
	r.Handle(&SetPausedMsg{}, SetPausedHandler{auth})
	r.Handle(&SetBlacklistMsg{}, SetBlacklistHandler{auth})
}

// checkOwner ensures the configured owner authorized this transaction.
func checkOwner(ctx vested.Context, db vested.ReadOnlyKVStore, auth x.Authenticator) (Configuration, error) {
	conf, err := loadConf(db)
	if err != nil {
		return conf, errors.Wrap(err, "load configuration")
	}
	if !auth.HasAddress(ctx, conf.Owner) {
		return conf, errors.Wrap(errors.ErrUnauthorized, "owner signature required")
	}
	return conf, nil
}

// CreateGrantHandler lets the owner allocate a new tranche out of the pool.
type CreateGrantHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ vested.Handler = CreateGrantHandler{}

func (h CreateGrantHandler) Check(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*vested.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vested.CheckResult{GasAllocated: createGrantCost}, nil
}

func (h CreateGrantHandler) Deliver(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*vested.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	t := &Tranche{
		Amount:   msg.Amount,
		Start:    msg.Start,
		Duration: msg.Duration,
		Cliff:    msg.Cliff,
		Expiry:   msg.Expiry,
		Booster:  msg.Booster,
	}
	if _, err := h.ctrl.Create(db, msg.Recipient, t); err != nil {
		return nil, err
	}
	return &vested.DeliverResult{}, nil
}

func (h CreateGrantHandler) validate(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*CreateGrantMsg, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	createMsg, ok := msg.(*CreateGrantMsg)
	if !ok {
		return nil, errors.WithType(errors.ErrMsg, msg)
	}
	if err := createMsg.Validate(); err != nil {
		return nil, err
	}
	if _, err := checkOwner(ctx, db, h.auth); err != nil {
		return nil, err
	}
	return createMsg, nil
}

// ClaimHandler releases due value across all of the caller's tranches.
// This path is rate limited by the configured cooldown.
type ClaimHandler struct {
	auth    x.Authenticator
	ctrl    Controller
	control cash.Controller
}

var _ vested.Handler = ClaimHandler{}

func (h ClaimHandler) Check(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*vested.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vested.CheckResult{GasAllocated: claimCost}, nil
}

func (h ClaimHandler) Deliver(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*vested.DeliverResult, error) {
	msg, recipient, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	now, err := currentTime(ctx)
	if err != nil {
		return nil, err
	}

	batch := int(conf.ClaimBatch)
	if msg.MaxTranches != 0 && int(msg.MaxTranches) < batch {
		batch = int(msg.MaxTranches)
	}
	amount, err := h.ctrl.ClaimAll(db, recipient, now, batch)
	if err != nil {
		return nil, err
	}
	if amount == 0 {
		return nil, errors.Wrap(ErrNothingToClaim, "no releasable value")
	}
	if err := h.control.MoveCoins(db, PoolAddress(), recipient, amount); err != nil {
		return nil, err
	}
	return &vested.DeliverResult{}, nil
}

func (h ClaimHandler) validate(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*ClaimMsg, vested.Address, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, nil, err
	}
	claimMsg, ok := msg.(*ClaimMsg)
	if !ok {
		return nil, nil, errors.WithType(errors.ErrMsg, msg)
	}
	if err := claimMsg.Validate(); err != nil {
		return nil, nil, err
	}

	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	recipient := signer.Address()

	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	if conf.ClaimPaused {
		return nil, nil, errors.Wrap(ErrPaused, "claims are paused")
	}
	if err := checkClaimable(db, recipient); err != nil {
		return nil, nil, err
	}

	// the cooldown guards only the full claim path
	if conf.Cooldown > 0 {
		grant, err := h.ctrl.Grant(db, recipient)
		if err != nil {
			return nil, nil, err
		}
		now, err := currentTime(ctx)
		if err != nil {
			return nil, nil, err
		}
		if grant != nil && !grant.LastClaim.IsZero() && now < grant.LastClaim+vested.UnixTime(conf.Cooldown) {
			return nil, nil, errors.Wrap(ErrCooldown, "claimed too recently")
		}
	}
	return claimMsg, recipient, nil
}

// ClaimOneHandler releases a single tranche. It skips the cooldown and
// does not refresh the cooldown clock.
type ClaimOneHandler struct {
	auth    x.Authenticator
	ctrl    Controller
	control cash.Controller
}

var _ vested.Handler = ClaimOneHandler{}

func (h ClaimOneHandler) Check(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*vested.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vested.CheckResult{GasAllocated: claimCost}, nil
}

func (h ClaimOneHandler) Deliver(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*vested.DeliverResult, error) {
	msg, recipient, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := currentTime(ctx)
	if err != nil {
		return nil, err
	}
	amount, err := h.ctrl.ClaimOne(db, recipient, int(msg.Index), now)
	if err != nil {
		return nil, err
	}
	if amount == 0 {
		return nil, errors.Wrap(ErrNothingToClaim, "no releasable value")
	}
	if err := h.control.MoveCoins(db, PoolAddress(), recipient, amount); err != nil {
		return nil, err
	}
	return &vested.DeliverResult{}, nil
}

func (h ClaimOneHandler) validate(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*ClaimOneMsg, vested.Address, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, nil, err
	}
	claimMsg, ok := msg.(*ClaimOneMsg)
	if !ok {
		return nil, nil, errors.WithType(errors.ErrMsg, msg)
	}
	if err := claimMsg.Validate(); err != nil {
		return nil, nil, err
	}

	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	recipient := signer.Address()

	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	if conf.ClaimPaused {
		return nil, nil, errors.Wrap(ErrPaused, "claims are paused")
	}
	if err := checkClaimable(db, recipient); err != nil {
		return nil, nil, err
	}
	return claimMsg, recipient, nil
}

func checkClaimable(db vested.ReadOnlyKVStore, recipient vested.Address) error {
	blocked, err := Blacklisted(db, recipient)
	if err != nil {
		return err
	}
	if blocked {
		return errors.Wrap(ErrBlacklisted, "recipient is excluded")
	}
	return nil
}

// RedeemHandler mints a tranche against a signed burn attestation from
// the whitelisted signer. Each proof can be redeemed once.
type RedeemHandler struct {
	auth  x.Authenticator
	ctrl  Controller
	guard replay.Guard
}

var _ vested.Handler = RedeemHandler{}

func (h RedeemHandler) Check(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*vested.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vested.CheckResult{GasAllocated: redeemCost}, nil
}

func (h RedeemHandler) Deliver(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*vested.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := currentTime(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.guard.Consume(db, msg.Proof); err != nil {
		return nil, err
	}

	if msg.Burned > math.MaxUint64/conf.Rate {
		return nil, errors.Wrap(errors.ErrAmount, "redemption amount overflow")
	}
	amount := msg.Burned * conf.Rate

	t := &Tranche{
		Amount:   amount,
		Start:    now,
		Duration: msg.Duration,
		Cliff:    msg.Cliff,
		Expiry:   msg.Expiry,
		Proof:    msg.Proof,
	}
	if _, err := h.ctrl.Create(db, msg.User, t); err != nil {
		return nil, err
	}
	return &vested.DeliverResult{}, nil
}

func (h RedeemHandler) validate(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*RedeemMsg, Configuration, error) {
	var conf Configuration

	msg, err := tx.GetMsg()
	if err != nil {
		return nil, conf, err
	}
	redeemMsg, ok := msg.(*RedeemMsg)
	if !ok {
		return nil, conf, errors.WithType(errors.ErrMsg, msg)
	}
	if err := redeemMsg.Validate(); err != nil {
		return nil, conf, err
	}

	conf, err = loadConf(db)
	if err != nil {
		return nil, conf, err
	}
	if conf.VestingPaused {
		return nil, conf, errors.Wrap(ErrPaused, "redemptions are paused")
	}
	if err := checkClaimable(db, redeemMsg.User); err != nil {
		return nil, conf, err
	}

	used, err := h.guard.IsConsumed(db, redeemMsg.Proof)
	if err != nil {
		return nil, conf, err
	}
	if used {
		return nil, conf, errors.Wrap(replay.ErrConsumed, "proof already redeemed")
	}

	digest := sigs.BuildDigest([]byte(vested.GetChainID(ctx)), redeemMsg.StructHash())
	if err := sigs.VerifyWhitelisted(digest, redeemMsg.Signature, conf.Signer); err != nil {
		return nil, conf, err
	}
	return redeemMsg, conf, nil
}

// MarkExpiredHandler sweeps a recipient's tranches past their expiry
// into the forfeited accounting. Permissionless and idempotent.
type MarkExpiredHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ vested.Handler = MarkExpiredHandler{}

func (h MarkExpiredHandler) Check(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*vested.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &vested.CheckResult{GasAllocated: sweepCost}, nil
}

func (h MarkExpiredHandler) Deliver(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*vested.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	now, err := currentTime(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := h.ctrl.MarkExpired(db, msg.Recipient, now); err != nil {
		return nil, err
	}
	return &vested.DeliverResult{}, nil
}

func (h MarkExpiredHandler) validate(ctx vested.Context, tx vested.Tx) (*MarkExpiredMsg, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	sweepMsg, ok := msg.(*MarkExpiredMsg)
	if !ok {
		return nil, errors.WithType(errors.ErrMsg, msg)
	}
	if err := sweepMsg.Validate(); err != nil {
		return nil, err
	}
	if x.MainSigner(ctx, h.auth) == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	return sweepMsg, nil
}

// RecoverExpiredHandler moves forfeited value to the DAO account.
type RecoverExpiredHandler struct {
	auth    x.Authenticator
	ctrl    Controller
	control cash.Controller
}

var _ vested.Handler = RecoverExpiredHandler{}

func (h RecoverExpiredHandler) Check(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*vested.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vested.CheckResult{GasAllocated: adminCost}, nil
}

func (h RecoverExpiredHandler) Deliver(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*vested.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.RecoverExpired(db, msg.Amount); err != nil {
		return nil, err
	}
	if err := h.control.MoveCoins(db, PoolAddress(), conf.DAO, msg.Amount); err != nil {
		return nil, err
	}
	return &vested.DeliverResult{}, nil
}

func (h RecoverExpiredHandler) validate(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*RecoverExpiredMsg, Configuration, error) {
	var conf Configuration

	msg, err := tx.GetMsg()
	if err != nil {
		return nil, conf, err
	}
	recoverMsg, ok := msg.(*RecoverExpiredMsg)
	if !ok {
		return nil, conf, errors.WithType(errors.ErrMsg, msg)
	}
	if err := recoverMsg.Validate(); err != nil {
		return nil, conf, err
	}
	conf, err = checkOwner(ctx, db, h.auth)
	if err != nil {
		return nil, conf, err
	}
	return recoverMsg, conf, nil
}

// FundPoolHandler moves value from the sender onto the pool account and
// raises the pool budget accordingly.
type FundPoolHandler struct {
	auth    x.Authenticator
	ctrl    Controller
	control cash.Controller
}

var _ vested.Handler = FundPoolHandler{}

func (h FundPoolHandler) Check(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*vested.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &vested.CheckResult{GasAllocated: adminCost}, nil
}

func (h FundPoolHandler) Deliver(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*vested.DeliverResult, error) {
	msg, sender, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.control.MoveCoins(db, sender, PoolAddress(), msg.Amount); err != nil {
		return nil, err
	}
	if err := h.ctrl.FundPool(db, msg.Amount); err != nil {
		return nil, err
	}
	return &vested.DeliverResult{}, nil
}

func (h FundPoolHandler) validate(ctx vested.Context, tx vested.Tx) (*FundPoolMsg, vested.Address, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, nil, err
	}
	fundMsg, ok := msg.(*FundPoolMsg)
	if !ok {
		return nil, nil, errors.WithType(errors.ErrMsg, msg)
	}
	if err := fundMsg.Validate(); err != nil {
		return nil, nil, err
	}
	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	return fundMsg, signer.Address(), nil
}

// RecoverSurplusHandler sweeps pool account value above the outstanding
// obligations to the DAO account.
type RecoverSurplusHandler struct {
	auth    x.Authenticator
	ctrl    Controller
	control cash.Controller
}

var _ vested.Handler = RecoverSurplusHandler{}

func (h RecoverSurplusHandler) Check(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*vested.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vested.CheckResult{GasAllocated: adminCost}, nil
}

func (h RecoverSurplusHandler) Deliver(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*vested.DeliverResult, error) {
	conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	pool, err := h.ctrl.Pool(db)
	if err != nil {
		return nil, err
	}
	balance, err := h.control.Balance(db, PoolAddress())
	if err != nil {
		return nil, err
	}
	owed := pool.outstanding()
	if balance <= owed {
		return nil, errors.Wrap(ErrNothingToClaim, "no surplus on the pool account")
	}

	surplus := balance - owed
	if err := h.control.MoveCoins(db, PoolAddress(), conf.DAO, surplus); err != nil {
		return nil, err
	}
	return &vested.DeliverResult{Log: fmt.Sprintf("recovered %d surplus", surplus)}, nil
}

func (h RecoverSurplusHandler) validate(ctx vested.Context, db vested.KVStore, tx vested.Tx) (Configuration, error) {
	var conf Configuration

	msg, err := tx.GetMsg()
	if err != nil {
		return conf, err
	}
	surplusMsg, ok := msg.(*RecoverSurplusMsg)
	if !ok {
		return conf, errors.WithType(errors.ErrMsg, msg)
	}
	if err := surplusMsg.Validate(); err != nil {
		return conf, err
	}
	return checkOwner(ctx, db, h.auth)
}

// UpdateConfigurationHandler patches the non-timelocked configuration
// fields. Numeric parameters must go through the timelock queue.
type UpdateConfigurationHandler struct {
	auth x.Authenticator
}

var _ vested.Handler = UpdateConfigurationHandler{}

func (h UpdateConfigurationHandler) Check(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*vested.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vested.CheckResult{GasAllocated: adminCost}, nil
}

func (h UpdateConfigurationHandler) Deliver(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*vested.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	next := conf.patch(msg.Patch)
	if err := next.Validate(); err != nil {
		return nil, err
	}
	if err := saveConf(db, next); err != nil {
		return nil, err
	}
	return &vested.DeliverResult{}, nil
}

func (h UpdateConfigurationHandler) validate(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*UpdateConfigurationMsg, Configuration, error) {
	var conf Configuration

	msg, err := tx.GetMsg()
	if err != nil {
		return nil, conf, err
	}
	updateMsg, ok := msg.(*UpdateConfigurationMsg)
	if !ok {
		return nil, conf, errors.WithType(errors.ErrMsg, msg)
	}
	if err := updateMsg.Validate(); err != nil {
		return nil, conf, err
	}
	p := updateMsg.Patch
	if p.Rate != 0 || p.Cooldown != 0 || p.ClaimBatch != 0 || p.MinBudget != 0 {
		return nil, conf, errors.Wrap(errors.ErrMsg, "numeric parameters are timelocked")
	}
	conf, err = checkOwner(ctx, db, h.auth)
	if err != nil {
		return nil, conf, err
	}
	return updateMsg, conf, nil
}

// SetPausedHandler switches the pause flags. Pausing is immediate on
// purpose and never timelocked.
type SetPausedHandler struct {
	auth x.Authenticator
}

var _ vested.Handler = SetPausedHandler{}

func (h SetPausedHandler) Check(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*vested.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vested.CheckResult{GasAllocated: adminCost}, nil
}

func (h SetPausedHandler) Deliver(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*vested.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf.ClaimPaused = msg.ClaimPaused
	conf.VestingPaused = msg.VestingPaused
	if err := saveConf(db, conf); err != nil {
		return nil, err
	}
	return &vested.DeliverResult{}, nil
}

func (h SetPausedHandler) validate(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*SetPausedMsg, Configuration, error) {
	var conf Configuration

	msg, err := tx.GetMsg()
	if err != nil {
		return nil, conf, err
	}
	pauseMsg, ok := msg.(*SetPausedMsg)
	if !ok {
		return nil, conf, errors.WithType(errors.ErrMsg, msg)
	}
	conf, err = checkOwner(ctx, db, h.auth)
	if err != nil {
		return nil, conf, err
	}
	return pauseMsg, conf, nil
}

// SetBlacklistHandler flips the exclusion flag of an address.
type SetBlacklistHandler struct {
	auth x.Authenticator
}

var _ vested.Handler = SetBlacklistHandler{}

func (h SetBlacklistHandler) Check(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*vested.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vested.CheckResult{GasAllocated: adminCost}, nil
}

func (h SetBlacklistHandler) Deliver(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*vested.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := SetBlacklisted(db, msg.Address, msg.Blocked); err != nil {
		return nil, err
	}
	return &vested.DeliverResult{}, nil
}

func (h SetBlacklistHandler) validate(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*SetBlacklistMsg, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	blMsg, ok := msg.(*SetBlacklistMsg)
	if !ok {
		return nil, errors.WithType(errors.ErrMsg, msg)
	}
	if err := blMsg.Validate(); err != nil {
		return nil, err
	}
	if _, err := checkOwner(ctx, db, h.auth); err != nil {
		return nil, err
	}
	return blMsg, nil
}

func currentTime(ctx vested.Context) (vested.UnixTime, error) {
	blockTime, err := vested.BlockTime(ctx)
	if err != nil {
		return 0, err
	}
	return vested.AsUnixTime(blockTime), nil
}
