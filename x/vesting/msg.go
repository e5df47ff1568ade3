package vesting

import (
	"crypto/sha256"

	"github.com/tendermint/go-amino"
	"github.com/vested-one/vested"
	"github.com/vested-one/vested/crypto"
	"github.com/vested-one/vested/errors"
)

const (
	pathCreateGrantMsg    = "vesting/create"
	pathClaimMsg          = "vesting/claim"
	pathClaimOneMsg       = "vesting/claim_one"
	pathRedeemMsg         = "vesting/redeem"
	pathMarkExpiredMsg    = "vesting/mark_expired"
	pathRecoverExpiredMsg = "vesting/recover_expired"
	pathFundPoolMsg       = "vesting/fund_pool"
	pathRecoverSurplusMsg = "vesting/recover_surplus"
	pathUpdateConfMsg     = "vesting/update_conf"
	pathSetPausedMsg      = "vesting/set_paused"
	pathSetBlacklistMsg   = "vesting/set_blacklist"

	// ProofLength is the fixed size of a burn redemption proof.
	ProofLength = 32
)

// CreateGrantMsg is the administrative path to a new tranche.
type CreateGrantMsg struct {
	Recipient vested.Address
	Amount    uint64
	Start     vested.UnixTime
	Duration  vested.UnixDuration
	Cliff     vested.UnixDuration
	Expiry    vested.UnixTime
	Booster   uint32
}

var _ vested.Msg = (*CreateGrantMsg)(nil)

func (CreateGrantMsg) Path() string {
	return pathCreateGrantMsg
}

// Marshal implements the persistence interface.
func (m *CreateGrantMsg) Marshal() ([]byte, error) {
	return amino.MarshalBinaryBare(m)
}

// Unmarshal implements the persistence interface.
func (m *CreateGrantMsg) Unmarshal(raw []byte) error {
	return amino.UnmarshalBinaryBare(raw, m)
}

func (m *CreateGrantMsg) Validate() error {
	if err := m.Recipient.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	t := Tranche{
		Amount:   m.Amount,
		Start:    m.Start,
		Duration: m.Duration,
		Cliff:    m.Cliff,
		Expiry:   m.Expiry,
		Booster:  m.Booster,
	}
	return t.Validate()
}

// ClaimMsg releases everything due across the caller's tranches. This is
// the cooldown gated path.
type ClaimMsg struct {
	// MaxTranches caps the work of this call; zero means the configured
	// claim batch.
	MaxTranches uint32
}

var _ vested.Msg = (*ClaimMsg)(nil)

func (ClaimMsg) Path() string {
	return pathClaimMsg
}

// Marshal implements the persistence interface.
func (m *ClaimMsg) Marshal() ([]byte, error) {
	return amino.MarshalBinaryBare(m)
}

// Unmarshal implements the persistence interface.
func (m *ClaimMsg) Unmarshal(raw []byte) error {
	return amino.UnmarshalBinaryBare(raw, m)
}

func (m *ClaimMsg) Validate() error {
	if m.MaxTranches > MaxTranchesPerRecipient {
		return errors.Wrapf(errors.ErrMsg, "max tranches above %d", MaxTranchesPerRecipient)
	}
	return nil
}

// ClaimOneMsg releases a single tranche by index. Not cooldown gated.
type ClaimOneMsg struct {
	Index uint32
}

var _ vested.Msg = (*ClaimOneMsg)(nil)

func (ClaimOneMsg) Path() string {
	return pathClaimOneMsg
}

// Marshal implements the persistence interface.
func (m *ClaimOneMsg) Marshal() ([]byte, error) {
	return amino.MarshalBinaryBare(m)
}

// Unmarshal implements the persistence interface.
func (m *ClaimOneMsg) Unmarshal(raw []byte) error {
	return amino.UnmarshalBinaryBare(raw, m)
}

func (m *ClaimOneMsg) Validate() error {
	if m.Index >= MaxTranchesPerRecipient {
		return errors.Wrap(errors.ErrMsg, "index out of range")
	}
	return nil
}

// RedeemMsg turns value burned on a companion ledger into a new tranche.
// The whitelisted signer vouches for the burn with a recoverable
// signature over the redemption fields, bound to this chain.
type RedeemMsg struct {
	User      vested.Address
	Burned    uint64
	Duration  vested.UnixDuration
	Cliff     vested.UnixDuration
	Expiry    vested.UnixTime
	Proof     []byte
	Nonce     uint64
	Signature []byte
}

var _ vested.Msg = (*RedeemMsg)(nil)

func (RedeemMsg) Path() string {
	return pathRedeemMsg
}

// Marshal implements the persistence interface.
func (m *RedeemMsg) Marshal() ([]byte, error) {
	return amino.MarshalBinaryBare(m)
}

// Unmarshal implements the persistence interface.
func (m *RedeemMsg) Unmarshal(raw []byte) error {
	return amino.UnmarshalBinaryBare(raw, m)
}

func (m *RedeemMsg) Validate() error {
	if err := m.User.Validate(); err != nil {
		return errors.Wrap(err, "user")
	}
	if m.Burned == 0 {
		return errors.Wrap(errors.ErrMsg, "zero burned amount")
	}
	if m.Duration <= 0 {
		return errors.Wrap(errors.ErrMsg, "non-positive duration")
	}
	if m.Cliff < 0 || m.Cliff > m.Duration {
		return errors.Wrap(errors.ErrMsg, "cliff outside duration")
	}
	if len(m.Proof) != ProofLength {
		return errors.Wrapf(errors.ErrMsg, "proof must be %d bytes", ProofLength)
	}
	if len(m.Signature) != crypto.RecoverableSignatureLength {
		return errors.Wrap(errors.ErrMsg, "malformed signature")
	}
	return nil
}

// StructHash is the canonical digest of the attested fields. The
// signature covers exactly these, in this order; anything else on the
// message can be altered without invalidating the attestation.
func (m *RedeemMsg) StructHash() []byte {
	attested := struct {
		User     vested.Address
		Burned   uint64
		Duration vested.UnixDuration
		Cliff    vested.UnixDuration
		Expiry   vested.UnixTime
		Proof    []byte
		Nonce    uint64
	}{m.User, m.Burned, m.Duration, m.Cliff, m.Expiry, m.Proof, m.Nonce}

	// amino encoding of a fixed struct is deterministic
	bz, err := amino.MarshalBinaryBare(attested)
	if err != nil {
		panic(err)
	}
	hash := sha256.Sum256(bz)
	return hash[:]
}

// MarkExpiredMsg sweeps a recipient's tranches past expiry. Anyone may
// run the sweep; it is idempotent and only moves value into the expired
// accounting.
type MarkExpiredMsg struct {
	Recipient vested.Address
}

var _ vested.Msg = (*MarkExpiredMsg)(nil)

func (MarkExpiredMsg) Path() string {
	return pathMarkExpiredMsg
}

// Marshal implements the persistence interface.
func (m *MarkExpiredMsg) Marshal() ([]byte, error) {
	return amino.MarshalBinaryBare(m)
}

// Unmarshal implements the persistence interface.
func (m *MarkExpiredMsg) Unmarshal(raw []byte) error {
	return amino.UnmarshalBinaryBare(raw, m)
}

func (m *MarkExpiredMsg) Validate() error {
	return m.Recipient.Validate()
}

// RecoverExpiredMsg moves already-forfeited value to the DAO account.
type RecoverExpiredMsg struct {
	Amount uint64
}

var _ vested.Msg = (*RecoverExpiredMsg)(nil)

func (RecoverExpiredMsg) Path() string {
	return pathRecoverExpiredMsg
}

// Marshal implements the persistence interface.
func (m *RecoverExpiredMsg) Marshal() ([]byte, error) {
	return amino.MarshalBinaryBare(m)
}

// Unmarshal implements the persistence interface.
func (m *RecoverExpiredMsg) Unmarshal(raw []byte) error {
	return amino.UnmarshalBinaryBare(raw, m)
}

func (m *RecoverExpiredMsg) Validate() error {
	if m.Amount == 0 {
		return errors.Wrap(errors.ErrMsg, "zero amount")
	}
	return nil
}

// FundPoolMsg moves value from the sender onto the pool account and
// raises the pool budget by the same amount.
type FundPoolMsg struct {
	Amount uint64
}

var _ vested.Msg = (*FundPoolMsg)(nil)

func (FundPoolMsg) Path() string {
	return pathFundPoolMsg
}

// Marshal implements the persistence interface.
func (m *FundPoolMsg) Marshal() ([]byte, error) {
	return amino.MarshalBinaryBare(m)
}

// Unmarshal implements the persistence interface.
func (m *FundPoolMsg) Unmarshal(raw []byte) error {
	return amino.UnmarshalBinaryBare(raw, m)
}

func (m *FundPoolMsg) Validate() error {
	if m.Amount == 0 {
		return errors.Wrap(errors.ErrMsg, "zero amount")
	}
	return nil
}

// RecoverSurplusMsg sweeps pool account value that backs no budget or
// schedule, such as tokens sent straight to the pool address, to the
// DAO account.
type RecoverSurplusMsg struct{}

var _ vested.Msg = (*RecoverSurplusMsg)(nil)

func (RecoverSurplusMsg) Path() string {
	return pathRecoverSurplusMsg
}

// Marshal implements the persistence interface.
func (m *RecoverSurplusMsg) Marshal() ([]byte, error) {
	return amino.MarshalBinaryBare(m)
}

// Unmarshal implements the persistence interface.
func (m *RecoverSurplusMsg) Unmarshal(raw []byte) error {
	return amino.UnmarshalBinaryBare(raw, m)
}

func (m *RecoverSurplusMsg) Validate() error {
	return nil
}

// UpdateConfigurationMsg patches the configuration singleton. Zero
// valued fields of the patch keep their current value.
type UpdateConfigurationMsg struct {
	Patch Configuration
}

var _ vested.Msg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string {
	return pathUpdateConfMsg
}

// Marshal implements the persistence interface.
func (m *UpdateConfigurationMsg) Marshal() ([]byte, error) {
	return amino.MarshalBinaryBare(m)
}

// Unmarshal implements the persistence interface.
func (m *UpdateConfigurationMsg) Unmarshal(raw []byte) error {
	return amino.UnmarshalBinaryBare(raw, m)
}

func (m *UpdateConfigurationMsg) Validate() error {
	// the patched result is validated against the live configuration
	// in the handler; only shape checks happen here
	if len(m.Patch.Owner) != 0 {
		if err := m.Patch.Owner.Validate(); err != nil {
			return errors.Wrap(err, "owner")
		}
	}
	if len(m.Patch.Signer) != 0 {
		if err := m.Patch.Signer.Validate(); err != nil {
			return errors.Wrap(err, "signer")
		}
	}
	if len(m.Patch.DAO) != 0 {
		if err := m.Patch.DAO.Validate(); err != nil {
			return errors.Wrap(err, "dao")
		}
	}
	return nil
}

// SetPausedMsg switches the claim and vesting features.
type SetPausedMsg struct {
	ClaimPaused   bool
	VestingPaused bool
}

var _ vested.Msg = (*SetPausedMsg)(nil)

func (SetPausedMsg) Path() string {
	return pathSetPausedMsg
}

// Marshal implements the persistence interface.
func (m *SetPausedMsg) Marshal() ([]byte, error) {
	return amino.MarshalBinaryBare(m)
}

// Unmarshal implements the persistence interface.
func (m *SetPausedMsg) Unmarshal(raw []byte) error {
	return amino.UnmarshalBinaryBare(raw, m)
}

func (m *SetPausedMsg) Validate() error {
	return nil
}

// SetBlacklistMsg flips the exclusion flag of an address.
type SetBlacklistMsg struct {
	Address vested.Address
	Blocked bool
}

var _ vested.Msg = (*SetBlacklistMsg)(nil)

func (SetBlacklistMsg) Path() string {
	return pathSetBlacklistMsg
}

// Marshal implements the persistence interface.
func (m *SetBlacklistMsg) Marshal() ([]byte, error) {
	return amino.MarshalBinaryBare(m)
}

// Unmarshal implements the persistence interface.
func (m *SetBlacklistMsg) Unmarshal(raw []byte) error {
	return amino.UnmarshalBinaryBare(raw, m)
}

func (m *SetBlacklistMsg) Validate() error {
	return m.Address.Validate()
}
