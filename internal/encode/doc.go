package encode

// Package encode builds and executes the single ffmpeg invocation that
// merges, trims, and re-encodes the fetched stream files. Execution goes
// through the Runner interface so the orchestrator can be tested without a
// real ffmpeg binary; stderr is captured and embedded verbatim in the error
// when ffmpeg exits non-zero.
