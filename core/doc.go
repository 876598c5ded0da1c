// Package core contains the business logic for the newsfeed application.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (NewsFeed)
// - fanout: The publish-time fan-out pipeline and the batch processor
// - newsfeed: Feed read service, feed cache service, and retention janitor
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, store, queue, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies beyond small focused libraries
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "newsfeed-app-api/core/fanout"
//	    "newsfeed-app-api/core/interfaces"
//	    "newsfeed-app-api/core/newsfeed"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:     myCache,     // implements interfaces.Cache
//	    FeedStore: myFeedStore, // implements interfaces.FeedStore
//	    Logger:    myLogger,    // implements interfaces.Logger
//	}
//
//	// Create services
//	cacheService := newsfeed.NewCacheService(deps, 200, time.Hour)
//	fanoutService := fanout.NewService(deps, directory, queue, cacheService, 1000)
//
//	// Fan a post out to followers
//	summary, err := fanoutService.Fanout(ctx, postID, publisherID)
package core
