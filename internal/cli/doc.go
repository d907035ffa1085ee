// Package cli contains the terminal screens of blogctl: the public
// list/read/search views and the authenticated admin dashboard, all driven
// from a small interactive loop. Screens render state snapshots produced by
// the fetch package and own nothing but ephemeral input.
package cli
