package selector

// Package selector implements the stream selection policy: pick exactly one
// video stream and at most one audio stream from the descriptors a provider
// returned. Selection is a pure function over the descriptor list with a
// deterministic preference order; ties keep provider order.
