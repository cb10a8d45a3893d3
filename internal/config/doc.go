// Package config provides configuration structures and utilities for sentinel.
// It defines where sessions live on disk, how long network calls may block,
// which analysis model is used and how the configuration file is located.
package config
