// Package models defines the records tipcalc persists.
//
// Entered form values are never stored. Persistence is limited to:
//   - Preset: a tip percentage offered as a preselection choice
//   - Operator: an account allowed to add and remove presets
//
// Records reference each other by ID strings, never by pointer.
package models
