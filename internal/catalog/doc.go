// Package catalog maps measurement value types to Home Assistant display
// metadata (device class, unit of measurement, value template).
//
// Two constructors cover the two deployment styles:
//   - Builtin(): the static table for stock airrohr firmware
//   - LoadFile(): a JSON definition file for customised fleets
//
// Catalogs are read-only after construction and safe for concurrent use.
// A value type missing from the catalog means the channel is unsupported;
// the bridge skips it without error.
package catalog
