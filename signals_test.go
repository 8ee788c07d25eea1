package sensitive

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestEmitDevelopmentKey(_ *testing.T) {
	// Should not panic
	emitDevelopmentKey(context.Background())
}

func TestEmitProcessorCreated(_ *testing.T) {
	emitProcessorCreated(context.Background(), "application/bson", "Application")
}

func TestEmitComplete(t *testing.T) {
	ctx := context.Background()
	for _, err := range []error{nil, errors.New("decrypt field SSN")} {
		name := "success"
		if err != nil {
			name = "error"
		}
		t.Run(name, func(_ *testing.T) {
			emitReceiveComplete(ctx, "application/json", "User", time.Millisecond, 1, err)
			emitLoadComplete(ctx, "application/bson", "Application", time.Millisecond, 2, err)
			emitStoreComplete(ctx, "application/bson", "Application", 512, time.Millisecond, 2, err)
			emitSendComplete(ctx, "application/json", "Application", 256, time.Millisecond, 3, 1, err)
		})
	}
}

func TestSignalVariables(t *testing.T) {
	signals := []struct {
		name   string
		signal interface{}
	}{
		{"SignalDevelopmentKey", SignalDevelopmentKey},
		{"SignalProcessorCreated", SignalProcessorCreated},
		{"SignalReceiveComplete", SignalReceiveComplete},
		{"SignalLoadComplete", SignalLoadComplete},
		{"SignalStoreComplete", SignalStoreComplete},
		{"SignalSendComplete", SignalSendComplete},
	}

	for _, s := range signals {
		if s.signal == nil {
			t.Errorf("%s is nil", s.name)
		}
	}
}

func TestKeyVariables(t *testing.T) {
	keys := []struct {
		name string
		key  interface{}
	}{
		{"KeyContentType", KeyContentType},
		{"KeyTypeName", KeyTypeName},
		{"KeyDataSize", KeyDataSize},
		{"KeyDuration", KeyDuration},
		{"KeyError", KeyError},
		{"KeyEncryptedCount", KeyEncryptedCount},
		{"KeyDecryptedCount", KeyDecryptedCount},
		{"KeyHashedCount", KeyHashedCount},
		{"KeyMaskedCount", KeyMaskedCount},
		{"KeyRedactedCount", KeyRedactedCount},
		{"KeySalt", KeySalt},
	}

	for _, k := range keys {
		if k.key == nil {
			t.Errorf("%s is nil", k.name)
		}
	}
}
