package gconf

import (
	"encoding/json"
	"testing"

	"github.com/vested-one/vested/errors"
	"github.com/vested-one/vested/store"
	"github.com/vested-one/vested/vestedtest/assert"
)

type testConf struct {
	Limit uint64 `json:"limit"`
}

func (c *testConf) Marshal() ([]byte, error) {
	return json.Marshal(c)
}

func (c *testConf) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, c)
}

func (c *testConf) Validate() error {
	if c.Limit == 0 {
		return errors.Wrap(errors.ErrState, "zero limit")
	}
	return nil
}

func TestSaveLoad(t *testing.T) {
	db := store.MemStore()

	assert.Nil(t, Save(db, "testpkg", &testConf{Limit: 42}))

	var got testConf
	assert.Nil(t, Load(db, "testpkg", &got))
	assert.Equal(t, uint64(42), got.Limit)

	// loading a package without configuration fails
	assert.IsErr(t, errors.ErrNotFound, Load(db, "otherpkg", &got))

	// an invalid configuration is never written
	assert.IsErr(t, errors.ErrState, Save(db, "testpkg2", &testConf{}))
	assert.IsErr(t, errors.ErrNotFound, Load(db, "testpkg2", &got))
}

func TestInitConfig(t *testing.T) {
	db := store.MemStore()
	opts := map[string]json.RawMessage{
		"conf": json.RawMessage(`{"testpkg": {"limit": 7}}`),
	}

	var conf testConf
	assert.Nil(t, InitConfig(db, opts, "testpkg", &conf))
	assert.Equal(t, uint64(7), conf.Limit)

	var got testConf
	assert.Nil(t, Load(db, "testpkg", &got))
	assert.Equal(t, uint64(7), got.Limit)

	assert.IsErr(t, errors.ErrNotFound, InitConfig(db, opts, "missing", &conf))
}
