package platform

// Package platform holds filesystem and host-environment helpers: the
// per-run scoped temp workspace, output directory creation, and lookup of
// the external tools the pipeline shells out to.
