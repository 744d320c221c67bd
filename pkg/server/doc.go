// Package server defines the Reforger dedicated-server configuration
// model: the typed structures behind server.json, documented defaults,
// a fluent builder, scenario identifier helpers, overlay merging, and
// file load/save in JSON or YAML.
//
// The package deliberately contains no validation logic. Loading keeps
// a file exactly as authored so the validation engine in pkg/validate
// reports on what the author actually wrote rather than on a patched-up
// copy.
//
// # Basic Usage
//
// Assemble a configuration and write it out:
//
//	cfg, err := server.NewBuilder().
//	    WithName("Weekend Conflict").
//	    WithScenario(server.ScenarioConflictArland).
//	    WithMaxPlayers(96).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := server.SaveFile("server.json", cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Layer an environment overlay over a base file:
//
//	cfg, err := server.MergeFiles("base.json", "prod.yaml")
//
// # Thread Safety
//
// Config values are plain data. Helpers in this package never share
// state between calls; a Builder instance, however, is not safe for
// concurrent use.
package server
