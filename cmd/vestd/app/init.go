package app

import (
	"encoding/json"
	"fmt"

	"github.com/vested-one/vested/crypto"
)

// GenInitOptions will produce some basic options for one rich
// account, to use for dev mode.
//
// You can set an owner address as the first argument and a whitelist
// signer condition as the second, otherwise random keys are generated
// for both.
func GenInitOptions(args []string) (json.RawMessage, error) {
	var owner string
	if len(args) > 0 {
		owner = args[0]
	} else {
		// if no owner provided, defaults to a throwaway key
		private := crypto.GenPrivKeyEd25519()
		owner = private.PublicKey().Condition().Address().String()
	}

	var signer string
	if len(args) > 1 {
		signer = args[1]
	} else {
		key := crypto.GenPrivKeySecp256k1()
		signer = crypto.SignerCondition(key.PubKey()).String()
	}

	opts := fmt.Sprintf(`{
  "conf": {
    "vesting": {
      "owner": %q,
      "signer": %q,
      "dao": %q,
      "rate": 1,
      "cooldown": 86400,
      "claim_batch": 25,
      "min_budget": 1000,
      "claim_paused": false,
      "vesting_paused": false
    }
  },
  "vesting": {
    "pool_budget": 1000000
  },
  "cash": [
    {
      "address": %q,
      "balance": 123456789
    }
  ]
}`, owner, signer, owner, owner)
	return []byte(opts), nil
}
