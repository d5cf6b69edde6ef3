// Package models defines the records exchanged with the gallery backend.
//
// The client treats image records as owned by the server: it decodes the
// fields it displays and addresses records by ID, nothing more.
package models
