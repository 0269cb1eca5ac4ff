// Package ent contains the generated database client. Run go generate to
// refresh it after changing the schema definitions.
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --feature sql/lock ./schema
