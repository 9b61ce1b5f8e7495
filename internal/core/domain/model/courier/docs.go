// Package courier defines the fleet data model: the Status enum, the Courier
// record, and the FleetSnapshot the simulation engine advances tick by tick.
//
// Courier and FleetSnapshot are deliberately plain, serialization-friendly
// records rather than guarded aggregates: they cross the boundary between the
// engine and its callers (storage, HTTP, rendering) and may arrive holding raw
// values that the services validator sanitizes. The Status enum is closed so
// the status transition table stays exhaustive.
package courier
