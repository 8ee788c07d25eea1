package benchmarks

import (
	"context"
	"testing"

	"github.com/zoobzio/sensitive"
	"github.com/zoobzio/sensitive/bson"
	"github.com/zoobzio/sensitive/json"
	"github.com/zoobzio/sensitive/loan"
	sensitivetest "github.com/zoobzio/sensitive/testing"
)

func BenchmarkFieldCodec_Encrypt_RawKey(b *testing.B) {
	codec := sensitivetest.TestCodec(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = codec.Encrypt(sensitivetest.SampleSSN)
	}
}

func BenchmarkFieldCodec_Decrypt_RawKey(b *testing.B) {
	codec := sensitivetest.TestCodec(b)
	env, _ := codec.Encrypt(sensitivetest.SampleSSN)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = codec.Decrypt(env)
	}
}

// The passphrase path pays for PBKDF2 on every call.
func BenchmarkFieldCodec_Encrypt_Passphrase(b *testing.B) {
	codec := sensitive.NewFieldCodec(sensitive.Config{Secret: "operator passphrase", Production: true})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = codec.Encrypt(sensitivetest.SampleSSN)
	}
}

func BenchmarkMaskSSN(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = sensitive.MaskSSN(sensitivetest.SampleSSN)
	}
}

func BenchmarkProcessor_Store_Application_BSON(b *testing.B) {
	proc, _ := sensitive.NewProcessor[loan.Application](bson.New(),
		sensitive.WithEncryptor(sensitive.EncryptAESGCM, sensitivetest.TestCodec(b)))
	app := sensitivetest.SampleApplication()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = proc.Store(ctx, app)
	}
}

func BenchmarkProcessor_Load_Application_BSON(b *testing.B) {
	proc, _ := sensitive.NewProcessor[loan.Application](bson.New(),
		sensitive.WithEncryptor(sensitive.EncryptAESGCM, sensitivetest.TestCodec(b)))
	ctx := context.Background()
	data, _ := proc.Store(ctx, sensitivetest.SampleApplication())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = proc.Load(ctx, data)
	}
}

func BenchmarkProcessor_Send_Application_JSON(b *testing.B) {
	proc, _ := sensitive.NewProcessor[loan.Application](json.New(),
		sensitive.WithEncryptor(sensitive.EncryptAESGCM, sensitivetest.TestCodec(b)))
	app := sensitivetest.SampleApplication()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = proc.Send(ctx, app)
	}
}

func BenchmarkHasher_Bcrypt_MinCost(b *testing.B) {
	h := sensitive.BcryptWithCost(sensitive.BcryptMinCost)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.Hash([]byte("borrower-password"))
	}
}
