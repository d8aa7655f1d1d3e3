// Package all imports all catalog source implementations.
//
// Import this package for its side effects to register every source:
//
//	import (
//		"github.com/sharwapi/marketplace"
//		_ "github.com/sharwapi/marketplace/all"
//	)
//
//	// Now all sources are available
//	sources := marketplace.SupportedSources()
//	// ["mock", "remote"]
package all

import (
	_ "github.com/sharwapi/marketplace/internal/mock"
	_ "github.com/sharwapi/marketplace/internal/remote"
)
