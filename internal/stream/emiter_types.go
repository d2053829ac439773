package stream

// EncoderFunc converts a value of type T to JSON bytes.
type EncoderFunc[T any] func(T) ([]byte, error)

// Emitter writes records of type T to some sink.
type Emitter[T any] interface {
	Emit(records []T) error
	EmitOne(record T) error
	Close() error
}
