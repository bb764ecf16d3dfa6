package codec

import (
	"fmt"
	"reflect"

	"github.com/anirudhraja/prototag/registry"
)

// Register builds the message descriptor for M and stores it in the
// default registry, making M usable as a nested message and through the
// top-level Marshal/Unmarshal API. It is meant to run once per type at
// startup and panics on double registration.
func Register[M any](fields ...Field[M]) *Message[M] {
	desc := NewMessage(fields...)
	if err := registry.Default.Register(reflect.TypeOf((*M)(nil)).Elem(), desc); err != nil {
		panic(fmt.Sprintf("codec: %v", err))
	}
	return desc
}

// MessageOf looks up the registered descriptor for M.
func MessageOf[M any]() (*Message[M], error) {
	rt := reflect.TypeOf((*M)(nil)).Elem()
	v, ok := registry.Default.Lookup(rt)
	if !ok {
		return nil, fmt.Errorf("no message descriptor registered for %v", rt)
	}
	desc, ok := v.(*Message[M])
	if !ok {
		return nil, fmt.Errorf("descriptor registered for %v has unexpected type %T", rt, v)
	}
	return desc, nil
}
