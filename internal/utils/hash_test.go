package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectedHMAC(key string, data []byte) []byte {
	h := hmac.New(sha256.New, []byte(key))
	h.Write(data)
	return h.Sum(nil)
}

func TestHasher_Sum(t *testing.T) {
	h := NewHasher("secret-key")
	data := []byte("test-data")

	sum1 := h.Sum(data)
	sum2 := h.Sum(data)

	require.NotEmpty(t, sum1)
	assert.Equal(t, sum1, sum2, "hash must be deterministic for the same input")
	assert.Equal(t, expectedHMAC("secret-key", data), sum1)
}

func TestHasher_SumHex(t *testing.T) {
	h := NewHasher("k")
	data := []byte(`{"key":"a"}`)

	assert.Equal(t, hex.EncodeToString(expectedHMAC("k", data)), h.SumHex(data))
}

func TestHasher_IndependentKeys(t *testing.T) {
	a := NewHasher("key-a")
	b := NewHasher("key-b")
	data := []byte("payload")

	assert.NotEqual(t, a.Sum(data), b.Sum(data))
	assert.Equal(t, expectedHMAC("key-a", data), a.Sum(data))
}

func TestHasher_Concurrent(t *testing.T) {
	h := NewHasher("concurrent")
	data := []byte("same input")
	want := expectedHMAC("concurrent", data)

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, h.Sum(data))
		}()
	}
	wg.Wait()
}

func TestHashString(t *testing.T) {
	got := HashString("hello", "key")
	assert.Equal(t, hex.EncodeToString(expectedHMAC("key", []byte("hello"))), got)
	assert.NotEqual(t, got, HashString("hello", "other-key"))
}
