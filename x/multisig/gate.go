package multisig

import (
	"github.com/vested-one/vested"
	"github.com/vested-one/vested/errors"
	"github.com/vested-one/vested/x/replay"
	"github.com/vested-one/vested/x/sigs"
)

// OpGuardNamespace is the replay namespace for consumed operation hashes.
const OpGuardNamespace = "op"

// Gate verifies a quorum over an operation hash and guarantees the hash
// authorizes exactly one execution.
type Gate struct {
	bucket ContractBucket
	guard  replay.Guard
}

// NewGate returns a gate backed by the default contract bucket.
func NewGate() Gate {
	return Gate{
		bucket: NewContractBucket(),
		guard:  replay.NewGuard(OpGuardNamespace),
	}
}

// Execute verifies that the signatures form a quorum of the contract
// owners over the operation hash, bound to this chain, and consumes the
// hash. It fails with ErrAlreadyExecuted if the hash was consumed before,
// regardless of the quorum presented. On success it returns the
// authorizing identities.
//
// The gate does not perform the operation the hash stands for; the caller
// does, within the same transaction.
func (g Gate) Execute(ctx vested.Context, db vested.KVStore, contractID []byte,
	opHash []byte, signatures [][]byte) ([]vested.Condition, error) {

	seen, err := g.guard.IsConsumed(db, opHash)
	if err != nil {
		return nil, err
	}
	if seen {
		return nil, errors.Wrapf(ErrAlreadyExecuted, "%X", opHash)
	}

	contract, err := g.bucket.GetContract(db, contractID)
	if err != nil {
		return nil, err
	}

	// the chain ID doubles as the signature domain separator
	digest := sigs.BuildDigest([]byte(vested.GetChainID(ctx)), opHash)
	approvers, err := sigs.VerifyQuorum(digest, signatures, contract.Owners, int(contract.Threshold))
	if err != nil {
		return nil, err
	}

	if err := g.guard.Consume(db, opHash); err != nil {
		return nil, err
	}
	return approvers, nil
}

// IsOwner reports whether the identity belongs to the contract owner set.
func (g Gate) IsOwner(db vested.ReadOnlyKVStore, contractID []byte, identity vested.Condition) (bool, error) {
	contract, err := g.bucket.GetContract(db, contractID)
	if err != nil {
		return false, err
	}
	return contract.IsOwner(identity), nil
}
