// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the build lifecycle: load configuration,
// run every plugin against a fresh render graph, validate it and report it.
// It is decoupled from any specific entrypoint like a CLI.
package app
