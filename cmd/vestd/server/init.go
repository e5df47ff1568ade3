package server

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
)

// GenOptions can parse command-line arguments to generate default
// app_state for the genesis file. This is application-specific.
type GenOptions func(args []string) (json.RawMessage, error)

// InitCmd fills in the app_state section of the genesis file, creating
// a minimal genesis document when none exists yet. Run tendermint init
// beforehand for the full set of node files.
func InitCmd(gen GenOptions, logger log.Logger, home string, args []string) error {
	if gen == nil {
		return nil
	}
	options, err := gen(args)
	if err != nil {
		return err
	}

	genFile := filepath.Join(home, "config", "genesis.json")
	if err := addGenesisOptions(genFile, options); err != nil {
		return err
	}
	logger.Info("Wrote app state", "path", genFile)
	return nil
}

// addGenesisOptions rewrites the genesis file with the given app_state,
// preserving all other fields of an existing document.
func addGenesisOptions(filename string, options json.RawMessage) error {
	doc := map[string]json.RawMessage{}

	bz, err := ioutil.ReadFile(filename)
	switch {
	case err == nil:
		if err := json.Unmarshal(bz, &doc); err != nil {
			return fmt.Errorf("cannot parse genesis file: %v", err)
		}
	case os.IsNotExist(err):
		chainID, _ := json.Marshal(fmt.Sprintf("test-chain-%s", cmn.RandStr(6)))
		genTime, _ := json.Marshal(time.Now().UTC().Format(time.RFC3339))
		doc["chain_id"] = chainID
		doc["genesis_time"] = genTime
	default:
		return err
	}

	doc["app_state"] = options
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}
	return ioutil.WriteFile(filename, out, 0644)
}
