package core

import (
	"github.com/sharwapi/marketplace/client"
)

// Type aliases so source implementations only import core.
type (
	Client     = client.Client
	Option     = client.Option
	URLBuilder = client.URLBuilder
	BaseURLs   = client.BaseURLs
	HTTPError  = client.HTTPError
)

// Function aliases for source implementations.
var (
	DefaultClient  = client.DefaultClient
	NewClient      = client.NewClient
	WithTimeout    = client.WithTimeout
	WithMaxRetries = client.WithMaxRetries
	BuildURLs      = client.BuildURLs
)
