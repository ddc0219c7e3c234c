package llm

import (
	"errors"
	"net/http"
	"testing"
)

func TestCompletionResponse(t *testing.T) {
	plain, err := completion{text: "partial", truncated: true, model: "m"}.response(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plain.StopReason != "max_tokens" || plain.Text() != "partial" || plain.Model != "m" {
		t.Fatalf("unexpected response %+v", plain)
	}

	_, err = completion{text: `{"given":"`, truncated: true}.response(explanationSchema())
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %v", err)
	}

	_, err = completion{text: `{"given":"x"}`}.response(explanationSchema())
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestStatusError(t *testing.T) {
	cause := errors.New("boom")

	var rl *ErrRateLimit
	if !errors.As(statusError(http.StatusTooManyRequests, cause), &rl) {
		t.Fatal("429 should be a rate limit")
	}
	var unavail *ErrProviderUnavailable
	for _, status := range []int{http.StatusBadGateway, http.StatusBadRequest} {
		if !errors.As(statusError(status, cause), &unavail) {
			t.Fatalf("%d should be provider unavailable", status)
		}
	}
}
