package config

// Package config loads application settings with viper. Every setting has a
// default equal to the built-in encode constants, so running without a
// config file is the normal mode; a YAML file or CLIPCUT_* environment
// variables override individual values.
