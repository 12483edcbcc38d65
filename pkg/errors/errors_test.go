package errors_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/agentstation/redlist/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestUnknownEndpointError(t *testing.T) {
	err := pkgerrors.NewUnknownEndpointError("get_nonexistent")
	assert.Equal(t, "unknown endpoint: get_nonexistent", err.Error())
	assert.True(t, errors.Is(err, pkgerrors.ErrUnknownEndpoint))
	assert.True(t, pkgerrors.IsUnknownEndpoint(fmt.Errorf("call: %w", err)))
	assert.False(t, pkgerrors.IsMissingParameter(err))
}

func TestMissingParameterErrors(t *testing.T) {
	t.Run("path", func(t *testing.T) {
		err := pkgerrors.NewMissingPathParameterError("get_taxa_sis_sis_id", "sis_id")
		assert.Contains(t, err.Error(), "path parameter")
		assert.Contains(t, err.Error(), "sis_id")
		assert.True(t, pkgerrors.IsMissingParameter(err))

		var target *pkgerrors.MissingPathParameterError
		require.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &target))
		assert.Equal(t, "get_taxa_sis_sis_id", target.Endpoint)
		assert.Equal(t, "sis_id", target.Name)
	})

	t.Run("query", func(t *testing.T) {
		err := pkgerrors.NewMissingQueryParameterError("get_taxa_scientific_name", "genus_name")
		assert.Contains(t, err.Error(), "query parameter")
		assert.Contains(t, err.Error(), "genus_name")
		assert.True(t, pkgerrors.IsMissingParameter(err))

		var pathErr *pkgerrors.MissingPathParameterError
		assert.False(t, errors.As(err, &pathErr))
	})
}

func TestRequestFailedError(t *testing.T) {
	t.Run("status with message", func(t *testing.T) {
		err := &pkgerrors.RequestFailedError{
			Method:     "GET",
			URL:        "https://api.iucnredlist.org/api/v4/countries",
			StatusCode: 503,
			Message:    "unavailable",
		}
		assert.Contains(t, err.Error(), "503")
		assert.Contains(t, err.Error(), "unavailable")
		assert.True(t, pkgerrors.IsRequestFailed(err))
		assert.True(t, errors.Is(err, pkgerrors.ErrServiceUnavailable))
		assert.False(t, pkgerrors.IsRateLimited(err))
	})

	t.Run("status mapping", func(t *testing.T) {
		assert.True(t, pkgerrors.IsRateLimited(&pkgerrors.RequestFailedError{StatusCode: 429}))
		assert.True(t, errors.Is(&pkgerrors.RequestFailedError{StatusCode: 401}, pkgerrors.ErrUnauthorized))
		assert.True(t, errors.Is(&pkgerrors.RequestFailedError{StatusCode: 403}, pkgerrors.ErrUnauthorized))
		assert.False(t, errors.Is(&pkgerrors.RequestFailedError{StatusCode: 404}, pkgerrors.ErrServiceUnavailable))
	})

	t.Run("transport error", func(t *testing.T) {
		err := &pkgerrors.RequestFailedError{
			Method:  "GET",
			URL:     "https://example.invalid",
			Timeout: true,
			Err:     context.DeadlineExceeded,
		}
		assert.Contains(t, err.Error(), "deadline exceeded")
		assert.True(t, pkgerrors.IsTimeout(err))
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})
}

func TestConfigFileError(t *testing.T) {
	baseErr := errors.New("invalid character '}'")
	err := pkgerrors.NewConfigFileError("/home/u/.iucn_client.json", baseErr)
	assert.Contains(t, err.Error(), ".iucn_client.json")
	assert.Contains(t, err.Error(), "invalid character")
	assert.Equal(t, baseErr, err.Unwrap())
	assert.True(t, pkgerrors.IsConfigFileError(err))
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("method", "FETCH", "must be one of GET POST")
		assert.Contains(t, err.Error(), "method")
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "empty catalog"}
		assert.Equal(t, "validation failed: empty catalog", err.Error())
	})
}

func TestParseError(t *testing.T) {
	t.Run("with file", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "yaml",
			File:    "endpoints.yaml",
			Message: "invalid indentation",
		}
		assert.Equal(t, "parse error in yaml file endpoints.yaml: invalid indentation", err.Error())
	})

	t.Run("format only", func(t *testing.T) {
		err := &pkgerrors.ParseError{Format: "json", Message: "unexpected EOF"}
		assert.Contains(t, err.Error(), "json parse error")
	})

	t.Run("constructor and wrap", func(t *testing.T) {
		baseErr := errors.New("EOF")
		err := pkgerrors.NewParseError("json", "", "unexpected end", baseErr)
		assert.Equal(t, baseErr, err.Unwrap())

		wrapped := pkgerrors.WrapParse("csv", "species.csv", baseErr)
		parseErr, ok := wrapped.(*pkgerrors.ParseError)
		require.True(t, ok)
		assert.Equal(t, "csv", parseErr.Format)
		assert.Equal(t, "species.csv", parseErr.File)
	})
}

func TestIOError(t *testing.T) {
	baseErr := errors.New("disk full")
	err := pkgerrors.NewIOError("write", "/data/results.xlsx", baseErr)
	assert.Contains(t, err.Error(), "write")
	assert.Contains(t, err.Error(), "/data/results.xlsx")
	assert.Equal(t, baseErr, err.Unwrap())
}

func TestResourceError(t *testing.T) {
	err := pkgerrors.NewResourceError("load", "catalog", "custom.yaml", errors.New("no endpoints"))
	assert.Equal(t, "failed to load catalog custom.yaml: no endpoints", err.Error())

	noID := pkgerrors.NewResourceError("create", "client", "", errors.New("bad option"))
	assert.Equal(t, "failed to create client: bad option", noID.Error())
}

func TestWrapHelpers(t *testing.T) {
	t.Run("WrapValidation", func(t *testing.T) {
		err := pkgerrors.WrapValidation("name", errors.New("required"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
		assert.Nil(t, pkgerrors.WrapValidation("field", nil))
	})

	t.Run("WrapIO", func(t *testing.T) {
		err := pkgerrors.WrapIO("read", "/tmp/in.csv", errors.New("permission denied"))
		require.Error(t, err)
		assert.Nil(t, pkgerrors.WrapIO("read", "file", nil))
	})

	t.Run("WrapResource", func(t *testing.T) {
		err := pkgerrors.WrapResource("resolve", "config", "", errors.New("boom"))
		resErr, ok := err.(*pkgerrors.ResourceError)
		require.True(t, ok)
		assert.Equal(t, "config", resErr.Resource)
		assert.Nil(t, pkgerrors.WrapResource("resolve", "config", "", nil))
	})

	t.Run("WrapParse", func(t *testing.T) {
		assert.Nil(t, pkgerrors.WrapParse("json", "", nil))
	})
}
