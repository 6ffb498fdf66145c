package entity

import (
	"errors"
	"fmt"
)

// ErrRateLimited marks a completion request the provider rejected with HTTP
// 429. Callers check it with [errors.Is]; the wrapped message carries the
// provider's detail. The request is never retried here, the client is expected
// to retry later.
var ErrRateLimited = errors.New("completion provider rate limited")

// UpstreamError is any other provider-side failure: network, auth, or a
// malformed completion payload.
type UpstreamError struct {
	Detail string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("completion provider error: %s", e.Detail)
}
