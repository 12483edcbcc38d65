// Package redlist is a client for the IUCN Red List API v4.
//
// A Client maps symbolic endpoint names from a catalog onto HTTP requests. It
// validates path and query parameters against the catalog, attaches the
// configured API token, retries transient failures, and returns the decoded
// JSON body.
//
// Example usage:
//
//	client, err := redlist.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	args := new(catalogs.Args).
//	    SetString("genus_name", "Panthera").
//	    SetString("species_name", "leo")
//	result, err := client.Call(ctx, "get_taxa_scientific_name", args)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Configuration is resolved once, in New, from the environment, explicit
// options, or a JSON config file. See package config for the priority rules.
package redlist

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/redlist/internal/transport"
	"github.com/agentstation/redlist/pkg/catalogs"
	"github.com/agentstation/redlist/pkg/config"
	"github.com/agentstation/redlist/pkg/errors"
	"github.com/agentstation/redlist/pkg/logging"
)

// Client calls Red List API endpoints. It is safe for concurrent use; its
// configuration and catalog never change after New returns.
type Client struct {
	catalog   *catalogs.Catalog
	config    config.Config
	transport *transport.Client
	logger    *zerolog.Logger
	hooks     *hooks
}

// New creates a Client, resolving its configuration once.
func New(opts ...Option) (*Client, error) {
	o, err := defaults().apply(opts...)
	if err != nil {
		return nil, errors.WrapResource("create", "client", "", err)
	}

	logger := o.logger
	if logger == nil {
		logger = logging.Default()
	}

	catalog := o.catalog
	if catalog == nil {
		if catalog, err = catalogs.Default(); err != nil {
			return nil, errors.WrapResource("load", "catalog", "embedded", err)
		}
	}

	o.resolve.Logger = logger
	cfg, err := config.Resolve(o.resolve)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Str("source", cfg.Source.String()).
		Str("base_url", cfg.BaseURL).
		Bool("has_token", cfg.HasToken()).
		Msg("Client configuration resolved")

	o.transport.Logger = logger
	return &Client{
		catalog:   catalog,
		config:    *cfg,
		transport: transport.New(cfg.APIToken, o.transport),
		logger:    logger,
		hooks:     newHooks(),
	}, nil
}

// Config returns a copy of the resolved configuration.
func (c *Client) Config() config.Config {
	return c.config
}

// Catalog returns the endpoint catalog the client dispatches against.
func (c *Client) Catalog() *catalogs.Catalog {
	return c.catalog
}

// OnCallComplete registers a callback run after every call that reached the transport.
func (c *Client) OnCallComplete(fn CallHook) {
	c.hooks.OnCallComplete(fn)
}
