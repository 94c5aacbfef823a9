package token_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/userkit/pkg/token"
)

func TestNewManager_EmptySecret(t *testing.T) {
	t.Parallel()

	m, err := token.NewManager("")
	assert.Nil(t, m)
	assert.ErrorIs(t, err, token.ErrEmptySecret)
}

func TestNext_Unique(t *testing.T) {
	t.Parallel()

	m := token.MustNewManager("test-secret")

	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		tok := m.Next()
		_, dup := seen[tok]
		require.False(t, dup, "duplicate token %q", tok)
		seen[tok] = struct{}{}
	}
}

func TestNext_Concurrent(t *testing.T) {
	t.Parallel()

	m := token.MustNewManager("test-secret")

	const workers = 50
	const perWorker = 20

	var mu sync.Mutex
	seen := make(map[string]struct{}, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				tok := m.Next()
				mu.Lock()
				seen[tok] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}

func TestVerify(t *testing.T) {
	t.Parallel()

	m := token.MustNewManager("test-secret")

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, m.Verify(m.Next()))
	})

	t.Run("malformed token", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, m.Verify("not-a-token"), token.ErrInvalidToken)
		assert.ErrorIs(t, m.Verify("a.b.c"), token.ErrInvalidToken)
		assert.ErrorIs(t, m.Verify("!!!.???"), token.ErrInvalidToken)
	})

	t.Run("tampered payload", func(t *testing.T) {
		t.Parallel()
		tok := m.Next()
		parts := strings.SplitN(tok, ".", 2)
		tampered := "AAAAAAAAAAAAAAAAAAAAAA" + "." + parts[1]
		assert.ErrorIs(t, m.Verify(tampered), token.ErrSignatureInvalid)
	})

	t.Run("different secret", func(t *testing.T) {
		t.Parallel()
		other := token.MustNewManager("another-secret")
		assert.ErrorIs(t, other.Verify(m.Next()), token.ErrSignatureInvalid)
	})
}
