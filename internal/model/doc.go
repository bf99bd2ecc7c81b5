package model

// Package model defines the domain data structures shared across the app:
// stream descriptors returned by the metadata provider, the clip request,
// and the single JSON result record the CLI emits. Structures are immutable
// value types; descriptors are only ever constructed by the provider
// (and by tests).
