package srtopts

import "time"

type OptionType uint8

const (
	TypeNonblocking OptionType = iota
	TypeMessageAPI
	TypePassphrase
	TypeStreamID
	TypeLatency
	TypePayloadSize
	TypeConnectTimeout
	TypeTooLatePacketDrop
	MaxOption
)

func (t OptionType) String() string {
	switch t {
	case TypeNonblocking:
		return "nonblocking"
	case TypeMessageAPI:
		return "message_api"
	case TypePassphrase:
		return "passphrase"
	case TypeStreamID:
		return "stream_id"
	case TypeLatency:
		return "latency"
	case TypePayloadSize:
		return "payload_size"
	case TypeConnectTimeout:
		return "connect_timeout"
	case TypeTooLatePacketDrop:
		return "too_late_packet_drop"
	default:
		return "option_unknown"
	}
}

type Option interface {
	Type() OptionType
	Value() interface{}
}

type optionNonblocking struct {
	v bool
}

func (o *optionNonblocking) Type() OptionType {
	return TypeNonblocking
}

func (o *optionNonblocking) Value() interface{} {
	return o.v
}

// Nonblocking makes send and receive return immediately instead of waiting
// for the operation to become possible. Use a Poller to learn when it is.
func Nonblocking(v bool) Option {
	return &optionNonblocking{
		v: v,
	}
}

type optionMessageAPI struct {
	v bool
}

func (o *optionMessageAPI) Type() OptionType {
	return TypeMessageAPI
}

func (o *optionMessageAPI) Value() interface{} {
	return o.v
}

// MessageAPI selects message mode: writes become discrete messages delivered
// whole, instead of a byte stream. Both sides of a connection must agree.
func MessageAPI(v bool) Option {
	return &optionMessageAPI{
		v: v,
	}
}

type optionPassphrase struct {
	v string
}

func (o *optionPassphrase) Type() OptionType {
	return TypePassphrase
}

func (o *optionPassphrase) Value() interface{} {
	return o.v
}

// Passphrase enables link encryption. 10 to 79 characters; both sides must
// set the same value or the handshake is rejected with a bad-secret reason.
func Passphrase(v string) Option {
	return &optionPassphrase{
		v: v,
	}
}

type optionStreamID struct {
	v string
}

func (o *optionStreamID) Type() OptionType {
	return TypeStreamID
}

func (o *optionStreamID) Value() interface{} {
	return o.v
}

// StreamID sets the stream identifier announced to the listener during the
// handshake, up to 512 characters.
func StreamID(v string) Option {
	return &optionStreamID{
		v: v,
	}
}

type optionLatency struct {
	v time.Duration
}

func (o *optionLatency) Type() OptionType {
	return TypeLatency
}

func (o *optionLatency) Value() interface{} {
	return o.v
}

// Latency sets the receiver buffering delay used to absorb jitter and
// retransmissions in live mode.
func Latency(v time.Duration) Option {
	return &optionLatency{
		v: v,
	}
}

type optionPayloadSize struct {
	v int
}

func (o *optionPayloadSize) Type() OptionType {
	return TypePayloadSize
}

func (o *optionPayloadSize) Value() interface{} {
	return o.v
}

// PayloadSize caps the size of a single sent packet's payload.
func PayloadSize(v int) Option {
	return &optionPayloadSize{
		v: v,
	}
}

type optionConnectTimeout struct {
	v time.Duration
}

func (o *optionConnectTimeout) Type() OptionType {
	return TypeConnectTimeout
}

func (o *optionConnectTimeout) Value() interface{} {
	return o.v
}

// ConnectTimeout bounds how long a blocking connect attempt may take.
func ConnectTimeout(v time.Duration) Option {
	return &optionConnectTimeout{
		v: v,
	}
}

type optionTooLatePacketDrop struct {
	v bool
}

func (o *optionTooLatePacketDrop) Type() OptionType {
	return TypeTooLatePacketDrop
}

func (o *optionTooLatePacketDrop) Value() interface{} {
	return o.v
}

// TooLatePacketDrop lets the sender drop packets that have no chance of
// being delivered in time, and the receiver skip them.
func TooLatePacketDrop(v bool) Option {
	return &optionTooLatePacketDrop{
		v: v,
	}
}
