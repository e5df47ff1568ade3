package app

import (
	"github.com/tendermint/go-amino"

	"github.com/vested-one/vested/errors"
	"github.com/vested-one/vested/store"
)

// ResultSet is a list of raw values returned from a query. Keys and
// values of a single query travel as two separate, equally sized sets.
type ResultSet struct {
	Results [][]byte
}

// Marshal implements the persistence interface.
func (r *ResultSet) Marshal() ([]byte, error) {
	return amino.MarshalBinaryBare(r)
}

// Unmarshal implements the persistence interface.
func (r *ResultSet) Unmarshal(raw []byte) error {
	return amino.UnmarshalBinaryBare(raw, r)
}

// ResultsFromKeys returns a ResultSet of all keys
// given a set of models
func ResultsFromKeys(models []store.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Key
	}
	return &ResultSet{Results: res}
}

// ResultsFromValues returns a ResultSet of all values
// given a set of models
func ResultsFromValues(models []store.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Value
	}
	return &ResultSet{Results: res}
}

// JoinResults inverts ResultsFromKeys and ResultsFromValues
// and makes them a consistent whole again
func JoinResults(keys, values *ResultSet) ([]store.Model, error) {
	kref, vref := keys.Results, values.Results
	if len(kref) != len(vref) {
		return nil, errors.Wrap(errors.ErrInput, "mismatched result set size")
	}
	mods := make([]store.Model, len(kref))
	for i := range mods {
		mods[i] = store.Model{
			Key:   kref[i],
			Value: vref[i],
		}
	}
	return mods, nil
}
