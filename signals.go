package sensitive

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals emitted by this package.
var (
	SignalDevelopmentKey   = capitan.NewSignal("sensitive.key.development", "No encryption secret configured, using the development fallback")
	SignalProcessorCreated = capitan.NewSignal("sensitive.processor.created", "Processor instantiated")
	SignalReceiveComplete  = capitan.NewSignal("sensitive.receive.complete", "Receive operation finished")
	SignalLoadComplete     = capitan.NewSignal("sensitive.load.complete", "Load operation finished")
	SignalStoreComplete    = capitan.NewSignal("sensitive.store.complete", "Store operation finished")
	SignalSendComplete     = capitan.NewSignal("sensitive.send.complete", "Send operation finished")
)

// Keys for typed event data.
var (
	KeyContentType    = capitan.NewStringKey("content_type")
	KeyTypeName       = capitan.NewStringKey("type_name")
	KeyDataSize       = capitan.NewIntKey("size")
	KeyDuration       = capitan.NewDurationKey("duration")
	KeyError          = capitan.NewErrorKey("error")
	KeyEncryptedCount = capitan.NewIntKey("encrypted_count")
	KeyDecryptedCount = capitan.NewIntKey("decrypted_count")
	KeyHashedCount    = capitan.NewIntKey("hashed_count")
	KeyMaskedCount    = capitan.NewIntKey("masked_count")
	KeyRedactedCount  = capitan.NewIntKey("redacted_count")
	KeySalt           = capitan.NewStringKey("salt")
)

// emitDevelopmentKey reports the development fallback at error severity so it
// is never mistaken for a supported configuration.
func emitDevelopmentKey(ctx context.Context) {
	capitan.Error(ctx, SignalDevelopmentKey,
		KeySalt.Field(Salt),
		KeyError.Field(ErrMissingEncryptionKey),
	)
}

func emitProcessorCreated(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalProcessorCreated,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

func emitReceiveComplete(ctx context.Context, contentType, typeName string, duration time.Duration, hashed int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyHashedCount.Field(hashed),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalReceiveComplete, fields...)
		return
	}
	capitan.Emit(ctx, SignalReceiveComplete, fields...)
}

func emitLoadComplete(ctx context.Context, contentType, typeName string, duration time.Duration, decrypted int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyDecryptedCount.Field(decrypted),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalLoadComplete, fields...)
		return
	}
	capitan.Emit(ctx, SignalLoadComplete, fields...)
}

func emitStoreComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, encrypted int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyDataSize.Field(size),
		KeyDuration.Field(duration),
		KeyEncryptedCount.Field(encrypted),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalStoreComplete, fields...)
		return
	}
	capitan.Emit(ctx, SignalStoreComplete, fields...)
}

func emitSendComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, masked, redacted int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyDataSize.Field(size),
		KeyDuration.Field(duration),
		KeyMaskedCount.Field(masked),
		KeyRedactedCount.Field(redacted),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalSendComplete, fields...)
		return
	}
	capitan.Emit(ctx, SignalSendComplete, fields...)
}
