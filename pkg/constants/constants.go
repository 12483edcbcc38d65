// Package constants provides shared constants used throughout the redlist codebase.
// This includes timeouts, retry limits, file permissions, and the names of the
// environment variables and files the client reads its configuration from.
package constants

import (
	"net/http"
	"time"
)

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the per-attempt ceiling for requests to the Red List API
	DefaultHTTPTimeout = 30 * time.Second

	// RetryBackoff is the base backoff duration for retries (1s, 2s, 4s, ...)
	RetryBackoff = 1 * time.Second

	// MaxRetryBackoff is the maximum backoff duration for retries
	MaxRetryBackoff = 30 * time.Second
)

// Limit constants define various limits and capacities
const (
	// MaxRetries is the number of automatic retries beyond the first attempt
	MaxRetries = 3

	// ErrorBodyLimit caps how much of a failed response body is kept in errors
	ErrorBodyLimit = 1024
)

// RetryableStatusCodes are the HTTP statuses that trigger an automatic retry.
var RetryableStatusCodes = []int{
	http.StatusTooManyRequests,
	http.StatusInternalServerError,
	http.StatusBadGateway,
	http.StatusServiceUnavailable,
	http.StatusGatewayTimeout,
}

// FilePermissions is the permission for written catalogs and results (rw-r--r--)
const FilePermissions = 0644

// API and configuration constants
const (
	// DefaultBaseURL is the Red List API host used when no base URL is configured
	DefaultBaseURL = "https://api.iucnredlist.org"

	// EnvPrefix marks environment variables that activate the environment config source
	EnvPrefix = "IUCN_"

	// EnvAPIToken holds the API token
	EnvAPIToken = "IUCN_API_TOKEN"

	// EnvBaseURL overrides the API base URL
	EnvBaseURL = "IUCN_BASE_URL"

	// DefaultConfigFileName is the JSON config file looked up in the home directory
	DefaultConfigFileName = ".iucn_client.json"

	// AuthorizationHeader carries the API token on every request
	AuthorizationHeader = "Authorization"

	// UserAgent identifies the client to the API
	UserAgent = "redlist-go"
)

// Red List constants
const (
	// CategoriesVersion is the Categories and Criteria version used for status descriptions
	CategoriesVersion = "3.1"

	// DescriptionLanguage is the language key read from category descriptions
	DescriptionLanguage = "en"
)

// Format constants
const (
	// HelpWidth is the column used when wrapping endpoint descriptions
	HelpWidth = 72

	// ParamHelpWidth is the column used when wrapping parameter descriptions
	ParamHelpWidth = 53

	// ParamHelpIndent is the hanging indent for wrapped parameter descriptions
	ParamHelpIndent = 19
)
