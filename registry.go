package sensitive

import (
	"reflect"
	"sync"
)

// processorKey identifies a shared processor: one per record type and
// boundary content type.
type processorKey struct {
	record      reflect.Type
	contentType string
}

type processorCache struct {
	mu         sync.Mutex
	processors map[processorKey]any
}

func (c *processorCache) lookup(key processorKey, build func() (any, error)) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.processors[key]; ok {
		return p, nil
	}
	p, err := build()
	if err != nil {
		return nil, err
	}
	if c.processors == nil {
		c.processors = make(map[processorKey]any)
	}
	c.processors[key] = p
	return p, nil
}

func (c *processorCache) clear() {
	c.mu.Lock()
	c.processors = nil
	c.mu.Unlock()
}

var shared processorCache

// Use returns the shared Processor for T at codec's content type, building
// it with opts on first use. Later calls ignore opts; call SetEncryptor on
// the returned processor to change capabilities.
//
// A failed build is not cached.
func Use[T Cloner[T]](codec Codec, opts ...ProcessorOption) (*Processor[T], error) {
	key := processorKey{record: reflect.TypeFor[T](), contentType: codec.ContentType()}
	p, err := shared.lookup(key, func() (any, error) {
		return NewProcessor[T](codec, opts...)
	})
	if err != nil {
		return nil, err
	}
	return p.(*Processor[T]), nil
}

// Reset drops every shared processor. Tests call it for isolation.
func Reset() {
	shared.clear()
}
