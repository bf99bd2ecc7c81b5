package provider

// Package provider resolves a video URL into metadata plus a stream
// descriptor list, and materializes a chosen stream into a local file.
// Both operations delegate to the ytdlp library; this package only
// normalizes the library's format records into model.StreamDescriptor.
