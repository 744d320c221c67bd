// Package validate is the two-phase validation engine for Reforger
// dedicated-server configurations.
//
// Machine-written server.json files fail in two distinct ways: the
// document is not a server configuration at all, or it is one whose
// values the server will reject or struggle with. The engine keeps
// those apart.
//
// # Architecture
//
// Phase one, CheckStructure, is a cheap shape check over untyped
// input: JSON decoding, required top-level sections, and two coarse
// numeric ranges. Its findings are plain strings because a document
// that fails here has no fields worth addressing. Phase two,
// ValidateConfig, runs the business rules over the typed
// configuration and emits a closed vocabulary of coded findings:
// Error values the server cannot start with, and Warning values an
// operator should read before shipping. Phase one gates phase two so
// rule output never piles onto a broken document.
//
// Parse ties the phases together and applies per-code suppression, so
// a pipeline can accept a documented exception without loosening
// anything else.
//
// # Basic Usage
//
//	result := validate.Parse(raw, nil)
//	if !result.Success {
//	    for _, msg := range result.Errors {
//	        fmt.Println("structural:", msg)
//	    }
//	    for _, e := range result.ValidationErrors {
//	        fmt.Println(e.Error())
//	    }
//	}
//	for _, w := range result.Warnings {
//	    fmt.Println(w.String())
//	}
//
// Suppress a known, accepted finding by code:
//
//	result := validate.Parse(raw, &validate.Options{
//	    IgnoreWarnings: []validate.WarningCode{validate.WarnEmptyAdminPassword},
//	})
//
// # Thread Safety
//
// Every function in the package is pure: no shared state, a fresh
// result per call, and no locks. Concurrent validation of different
// or identical inputs is safe.
package validate
