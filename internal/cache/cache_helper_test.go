package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestHelper(t *testing.T) (*CacheHelper, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewCacheHelper(client, "lookup:"), mr
}

func TestCacheHelperRoundTrip(t *testing.T) {
	helper, _ := newTestHelper(t)
	ctx := context.Background()

	type row struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}

	if err := helper.Set(ctx, "carreras", []row{{ID: 1, Name: "Ingeniería de Sistemas"}}, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var got []row
	if err := helper.Get(ctx, "carreras", &got); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Ingeniería de Sistemas" {
		t.Errorf("Get returned %v", got)
	}
}

func TestCacheHelperMiss(t *testing.T) {
	helper, _ := newTestHelper(t)

	var dest string
	err := helper.Get(context.Background(), "missing", &dest)
	if !errors.Is(err, ErrCacheNotFound) {
		t.Errorf("Get on missing key: %v, want ErrCacheNotFound", err)
	}
}

func TestCacheHelperInvalidatePattern(t *testing.T) {
	helper, mr := newTestHelper(t)
	ctx := context.Background()

	_ = helper.Set(ctx, "carreras", "a", time.Minute)
	_ = helper.Set(ctx, "sectores", "b", time.Minute)

	if err := helper.InvalidatePattern(ctx, "*"); err != nil {
		t.Fatalf("InvalidatePattern: %v", err)
	}
	if mr.Exists("lookup:carreras") || mr.Exists("lookup:sectores") {
		t.Error("keys survived invalidation")
	}
}

func TestCacheHelperNilClientDegradesGracefully(t *testing.T) {
	helper := NewCacheHelper(nil, "lookup:")
	ctx := context.Background()

	if err := helper.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Errorf("Set with nil client: %v", err)
	}
	var dest string
	if err := helper.Get(ctx, "k", &dest); !errors.Is(err, ErrCacheNotAvailable) {
		t.Errorf("Get with nil client: %v, want ErrCacheNotAvailable", err)
	}
	if err := helper.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete with nil client: %v", err)
	}
}
