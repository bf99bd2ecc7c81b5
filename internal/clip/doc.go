package clip

// Package clip sequences one extraction run: metadata lookup, stream
// selection, fetch into a scoped temp workspace, a single ffmpeg
// invocation, and normalization of every failure into the uniform result
// record. Runs are fully synchronous and stateless; the workspace is
// removed on every exit path.
