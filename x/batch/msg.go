package batch

import (
	"github.com/tendermint/go-amino"
	"github.com/vested-one/vested"
	"github.com/vested-one/vested/errors"
)

const (
	PathExecuteBatchMsg = "batch/execute"

	// MaxBatchMessages bounds the work a single transaction can request.
	MaxBatchMessages = 10
)

// codec encodes the message list. Applications must register every
// concrete message type that can appear inside a batch.
var codec = amino.NewCodec()

func init() {
	codec.RegisterInterface((*vested.Msg)(nil), nil)
}

// RegisterMessage makes a concrete message type usable inside a batch.
func RegisterMessage(msg vested.Msg, name string) {
	codec.RegisterConcrete(msg, name, nil)
}

// ExecuteBatchMsg wraps multiple messages to be executed in sequence
// within a single transaction.
type ExecuteBatchMsg struct {
	Messages []vested.Msg
}

var _ vested.Msg = (*ExecuteBatchMsg)(nil)

func (*ExecuteBatchMsg) Path() string {
	return PathExecuteBatchMsg
}

// Marshal implements the persistence interface.
func (m *ExecuteBatchMsg) Marshal() ([]byte, error) {
	return codec.MarshalBinaryBare(m)
}

// Unmarshal implements the persistence interface.
func (m *ExecuteBatchMsg) Unmarshal(raw []byte) error {
	return codec.UnmarshalBinaryBare(raw, m)
}

func (m *ExecuteBatchMsg) Validate() error {
	if len(m.Messages) == 0 {
		return errors.Wrap(errors.ErrEmpty, "batch without messages")
	}
	if len(m.Messages) > MaxBatchMessages {
		return errors.Wrapf(errors.ErrMsg, "batch above %d messages", MaxBatchMessages)
	}
	for _, v := range m.Messages {
		if _, ok := v.(*ExecuteBatchMsg); ok {
			return errors.Wrap(errors.ErrMsg, "nested batch")
		}
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}
