package multisig

// MultiSigTx is a transaction that requests execution under a multisig
// contract. The signatures authorize the hash of the contained message,
// not the transaction envelope.
type MultiSigTx interface {
	// GetMultisig returns the contract id the quorum refers to, or nil
	// if this transaction does not use a contract.
	GetMultisig() []byte

	// GetOperationSignatures returns the recoverable owner signatures
	// over the operation digest.
	GetOperationSignatures() [][]byte
}
