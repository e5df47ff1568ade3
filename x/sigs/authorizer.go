package sigs

import (
	"crypto/sha256"

	"github.com/vested-one/vested"
	"github.com/vested-one/vested/crypto"
	"github.com/vested-one/vested/errors"
)

// digestPrefix separates digests built here from plain message hashes, so
// a signature over arbitrary payload bytes can never double as an
// authorization.
var digestPrefix = []byte{0x19, 0x01}

// BuildDigest binds a structured payload hash to an execution context.
// Signatures over the result cannot be replayed under a different domain
// separator, for example on another deployment of the same system.
func BuildDigest(domainSeparator []byte, structHash []byte) []byte {
	data := make([]byte, 0, len(digestPrefix)+len(domainSeparator)+len(structHash))
	data = append(data, digestPrefix...)
	data = append(data, domainSeparator...)
	data = append(data, structHash...)
	digest := sha256.Sum256(data)
	return digest[:]
}

// VerifyWhitelisted recovers the signer of the digest and compares it
// against the single expected identity. This is the authorization path for
// burn redemption attestations, where only the configured signer may vouch.
func VerifyWhitelisted(digest []byte, sig []byte, expected vested.Condition) error {
	signer, err := crypto.RecoverSigner(digest, sig)
	if err != nil {
		return err
	}
	if !signer.Equals(expected) {
		return errors.Wrap(errors.ErrUnauthorized, "signer not whitelisted")
	}
	return nil
}

// VerifyQuorum recovers the signer of every signature and checks the set
// against the owner list. It fails if any identity recovers twice, if a
// recovered identity is not an owner, or if fewer distinct owners signed
// than the threshold requires. On success it returns the authorizing
// identities for audit purposes.
func VerifyQuorum(digest []byte, sigs [][]byte, owners []vested.Condition,
	threshold int) ([]vested.Condition, error) {

	seen := make([]vested.Condition, 0, len(sigs))
	for _, sig := range sigs {
		signer, err := crypto.RecoverSigner(digest, sig)
		if err != nil {
			return nil, err
		}
		for _, s := range seen {
			if s.Equals(signer) {
				return nil, errors.Wrapf(ErrDuplicateSigner, "%s", signer)
			}
		}
		if !isMember(owners, signer) {
			return nil, errors.Wrapf(ErrUnauthorizedSigner, "%s", signer)
		}
		seen = append(seen, signer)
	}
	if len(seen) < threshold {
		return nil, errors.Wrapf(ErrQuorumNotMet, "%d of %d", len(seen), threshold)
	}
	return seen, nil
}

func isMember(set []vested.Condition, c vested.Condition) bool {
	for _, s := range set {
		if s.Equals(c) {
			return true
		}
	}
	return false
}
