package vesting

import (
	"bytes"
	"testing"

	"github.com/vested-one/vested/vestedtest"
	"github.com/vested-one/vested/vestedtest/assert"
)

func validRedeemMsg() *RedeemMsg {
	return &RedeemMsg{
		User:      vestedtest.NewCondition().Address(),
		Burned:    100,
		Duration:  1000,
		Cliff:     50,
		Expiry:    5000,
		Proof:     make([]byte, ProofLength),
		Nonce:     7,
		Signature: make([]byte, 65),
	}
}

func TestRedeemMsgValidate(t *testing.T) {
	assert.Nil(t, validRedeemMsg().Validate())

	cases := map[string]func(*RedeemMsg){
		"zero burned":     func(m *RedeemMsg) { m.Burned = 0 },
		"zero duration":   func(m *RedeemMsg) { m.Duration = 0 },
		"cliff too long":  func(m *RedeemMsg) { m.Cliff = m.Duration + 1 },
		"short proof":     func(m *RedeemMsg) { m.Proof = m.Proof[:16] },
		"short signature": func(m *RedeemMsg) { m.Signature = m.Signature[:64] },
		"no user":         func(m *RedeemMsg) { m.User = nil },
	}
	for name, corrupt := range cases {
		t.Run(name, func(t *testing.T) {
			msg := validRedeemMsg()
			corrupt(msg)
			if msg.Validate() == nil {
				t.Fatal("corrupted message accepted")
			}
		})
	}
}

func TestRedeemMsgStructHash(t *testing.T) {
	msg := validRedeemMsg()
	base := msg.StructHash()

	// the signature is not part of the attested fields
	msg.Signature = bytes.Repeat([]byte{0xFF}, 65)
	if !bytes.Equal(base, msg.StructHash()) {
		t.Fatal("signature must not affect the digest")
	}

	// every attested field changes the digest
	msg.Nonce++
	if bytes.Equal(base, msg.StructHash()) {
		t.Fatal("nonce not covered by the digest")
	}
	msg.Nonce--
	msg.Burned++
	if bytes.Equal(base, msg.StructHash()) {
		t.Fatal("burned amount not covered by the digest")
	}
}

func TestClaimMsgValidate(t *testing.T) {
	assert.Nil(t, (&ClaimMsg{MaxTranches: 10}).Validate())
	if (&ClaimMsg{MaxTranches: MaxTranchesPerRecipient + 1}).Validate() == nil {
		t.Fatal("oversized batch accepted")
	}
}
