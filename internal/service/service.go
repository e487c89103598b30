// Package service contains the operations behind the HTTP handlers.
//
// Handlers pass it request input that already passed schema checks; it
// talks to the schema registry and the username generator.
package service
