// Package internal contains logging and identity plumbing shared by the
// approuter packages. Types and functions in this package are not part of the
// public API.
package internal
