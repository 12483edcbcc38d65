package transport

import (
	"context"
	"fmt"
	"net/http"
	"slices"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/agentstation/redlist/pkg/constants"
)

// IsRetryableStatus reports whether a status triggers another attempt.
func IsRetryableStatus(code int) bool {
	return slices.Contains(constants.RetryableStatusCodes, code)
}

// checkRetry retries transport errors the default policy considers
// recoverable and the statuses in constants.RetryableStatusCodes.
func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return false, ctxErr
	}
	if err != nil {
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}
	return IsRetryableStatus(resp.StatusCode), nil
}

// passthroughErrorHandler hands back the final response once retries are
// exhausted so its status and body can be reported.
func passthroughErrorHandler(resp *http.Response, err error, numTries int) (*http.Response, error) {
	if resp != nil {
		return resp, nil
	}
	return nil, fmt.Errorf("giving up after %d attempt(s): %w", numTries, err)
}
