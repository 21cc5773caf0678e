package rpc

import (
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/proto"
)

// CodecName is the gRPC content-subtype of the payload codec. It replaces the
// default protobuf codec and stays wire compatible with it.
const CodecName = "proto"

func init() {
	encoding.RegisterCodec(wireCodec{})
}

// wireMessage is implemented by the posts.v1 message structs of this package.
type wireMessage interface {
	appendWire(b []byte) []byte
	readWire(b []byte) error
}

// wireCodec encodes the posts.v1 messages in protobuf wire format and hands
// every other proto.Message to the protobuf runtime.
type wireCodec struct{}

func (wireCodec) Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case wireMessage:
		return m.appendWire(nil), nil
	case proto.Message:
		data, err := proto.Marshal(m)
		if err != nil {
			return nil, fmt.Errorf("proto codec marshal %T: %w", v, err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("proto codec: unsupported message type %T", v)
	}
}

func (wireCodec) Unmarshal(data []byte, v any) error {
	switch m := v.(type) {
	case wireMessage:
		if err := m.readWire(data); err != nil {
			return fmt.Errorf("proto codec unmarshal %T: %w", v, err)
		}
		return nil
	case proto.Message:
		if err := proto.Unmarshal(data, m); err != nil {
			return fmt.Errorf("proto codec unmarshal %T: %w", v, err)
		}
		return nil
	default:
		return fmt.Errorf("proto codec: unsupported message type %T", v)
	}
}

func (wireCodec) Name() string {
	return CodecName
}
