// Package settings implements inclusion settings: an opt-out mapping from
// stage label to enabled flag.
//
// A label that is absent from the mapping is included. The mapping is keyed
// by the same strings as stage labels and nothing else ties the two together,
// so a misspelled key silently leaves the stage included. Unknown reports such
// keys so callers can warn about them.
package settings
