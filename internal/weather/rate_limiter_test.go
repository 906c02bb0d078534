package weather

import (
	"context"
	"testing"
	"time"

	"github.com/AdityaDcode/FarmVista/internal/model"
)

type stubFetcher struct {
	calls int
}

func (s *stubFetcher) Fetch(ctx context.Context, latitude, longitude float64) (model.WeatherSnapshot, error) {
	s.calls++
	return model.WeatherSnapshot{Temperature: 21}, nil
}

func TestRateLimited_ForwardsWithinBurst(t *testing.T) {
	stub := &stubFetcher{}
	limited := NewRateLimited(stub, 1, 2)

	for i := 0; i < 2; i++ {
		snapshot, err := limited.Fetch(context.Background(), 1, 2)
		if err != nil {
			t.Fatalf("Fetch %d returned error: %v", i, err)
		}
		if snapshot.Temperature != 21 {
			t.Errorf("Expected forwarded snapshot, got %+v", snapshot)
		}
	}
	if stub.calls != 2 {
		t.Errorf("Expected 2 forwarded calls, got %d", stub.calls)
	}
}

func TestRateLimited_CanceledContext(t *testing.T) {
	stub := &stubFetcher{}
	// One burst token and a near-zero refill rate, so the second call must wait.
	limited := NewRateLimited(stub, 0.001, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := limited.Fetch(ctx, 1, 2); err == nil {
		// first call consumes the burst token
		if _, err := limited.Fetch(ctx, 1, 2); err == nil {
			t.Fatal("Expected error once burst is exhausted and context expires")
		}
	}
	if stub.calls > 1 {
		t.Errorf("Expected at most 1 forwarded call, got %d", stub.calls)
	}
}
