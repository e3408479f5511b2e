package report

import (
	"errors"
	"testing"
)

func TestPoolAcquireCreatesLazily(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(2)
	defer pool.Close()

	if got := len(pool.converters); got != 0 {
		t.Errorf("converters created at pool construction: %d", got)
	}

	conv, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if conv == nil {
		t.Fatal("Acquire() returned nil converter")
	}
	if got := len(pool.converters); got != 1 {
		t.Errorf("converters after first acquire = %d, want 1", got)
	}

	pool.Release(conv)
}

func TestPoolReuseAfterRelease(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(1)
	defer pool.Close()

	first, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	pool.Release(first)

	second, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if first != second {
		t.Error("released converter was not reused")
	}
	pool.Release(second)

	if got := len(pool.converters); got != 1 {
		t.Errorf("pool created %d converters, want 1", got)
	}
}

func TestPoolAcquireError(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(1, WithAssetPath("/nonexistent/assets"))
	defer pool.Close()

	if _, err := pool.Acquire(); !errors.Is(err, ErrInvalidAssetPath) {
		t.Fatalf("Acquire() error = %v, want ErrInvalidAssetPath", err)
	}

	// The failed slot must be returned so a later acquire can retry.
	if pool.created != 0 {
		t.Errorf("created = %d after failed acquire, want 0", pool.created)
	}
}

func TestPoolMinimumSize(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(0)
	defer pool.Close()

	if pool.Size() != 1 {
		t.Errorf("Size() = %d, want 1", pool.Size())
	}
}

func TestPoolCloseIdempotent(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(1)
	conv, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	pool.Release(conv)

	if err := pool.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := pool.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	// Release after close must not panic or block.
	pool.Release(conv)
}

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	t.Run("explicit wins", func(t *testing.T) {
		t.Parallel()
		if got := ResolvePoolSize(3); got != 3 {
			t.Errorf("ResolvePoolSize(3) = %d", got)
		}
	})

	t.Run("auto within bounds", func(t *testing.T) {
		t.Parallel()
		got := ResolvePoolSize(0)
		if got < MinPoolSize || got > MaxPoolSize {
			t.Errorf("ResolvePoolSize(0) = %d, want within [%d, %d]", got, MinPoolSize, MaxPoolSize)
		}
	})
}
