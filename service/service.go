// Package service runs the long-lived collaborators of the render loop
// (audio playback, signal watching) with ordered start and reverse stop.
package service

// Service defines the lifecycle of an infrastructure subsystem
//
// Lifecycle:
//  1. Construction
//  2. Start() - open resources, launch background goroutines
//  3. [runtime operation]
//  4. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Start begins service operation
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent - safe to call multiple times
	Stop()
}
