// Package fixtures builds synthetic test graphs for exercising the
// degree/trim/cycle pipeline without a real BLAKE2b oracle.
//
// buildRing adapts this module's ancestry in a generic graph-construction
// library down to the one deterministic ring topology the cuckoo solver's
// tests need: instead of a general Constructor/Graph API, PlantedCycle
// uses that ring directly to plant a genuine 42-edge cycle behind an
// oracle.Endpointer, so tests exercise the real solve pipeline against a
// graph whose shape is generated (and sanity-checked) by code, not
// hand-typed adjacency.
package fixtures
