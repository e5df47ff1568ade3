package batch

import (
	"context"
	"testing"

	"github.com/vested-one/vested"
	"github.com/vested-one/vested/store"
	"github.com/vested-one/vested/vestedtest"
	"github.com/vested-one/vested/vestedtest/assert"
)

func TestDecoratorUnrollsBatch(t *testing.T) {
	d := NewDecorator()
	h := &vestedtest.Handler{}
	db := store.MemStore()
	ctx := context.Background()

	msg := &ExecuteBatchMsg{Messages: []vested.Msg{
		&vestedtest.Msg{RoutePath: "test/one"},
		&vestedtest.Msg{RoutePath: "test/two"},
		&vestedtest.Msg{RoutePath: "test/three"},
	}}
	tx := &vestedtest.Tx{Msg: msg}

	res, err := d.Deliver(ctx, db, tx, h)
	assert.Nil(t, err)
	assert.Equal(t, 3, h.DeliverCallCount())
	if len(res.Data) == 0 {
		t.Fatal("combined result carries no data")
	}

	_, err = d.Check(ctx, db, tx, h)
	assert.Nil(t, err)
	assert.Equal(t, 3, h.CheckCallCount())
}

func TestDecoratorPassesPlainTx(t *testing.T) {
	d := NewDecorator()
	h := &vestedtest.Handler{}
	db := store.MemStore()
	ctx := context.Background()

	tx := &vestedtest.Tx{Msg: &vestedtest.Msg{RoutePath: "test/plain"}}
	_, err := d.Deliver(ctx, db, tx, h)
	assert.Nil(t, err)
	assert.Equal(t, 1, h.DeliverCallCount())
}

func TestExecuteBatchMsgValidate(t *testing.T) {
	cases := map[string]struct {
		msg     *ExecuteBatchMsg
		wantErr bool
	}{
		"valid": {
			msg: &ExecuteBatchMsg{Messages: []vested.Msg{
				&vestedtest.Msg{RoutePath: "test/one"},
			}},
		},
		"empty": {
			msg:     &ExecuteBatchMsg{},
			wantErr: true,
		},
		"too many": {
			msg: &ExecuteBatchMsg{
				Messages: make([]vested.Msg, MaxBatchMessages+1),
			},
			wantErr: true,
		},
		"nested": {
			msg: &ExecuteBatchMsg{Messages: []vested.Msg{
				&ExecuteBatchMsg{Messages: []vested.Msg{
					&vestedtest.Msg{RoutePath: "test/one"},
				}},
			}},
			wantErr: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("invalid batch accepted")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("valid batch rejected: %s", err)
			}
		})
	}
}
