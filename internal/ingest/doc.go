// Package ingest imports a results sheet into the tournament database.
//
// Each row names an event, a player and that player's record at the event.
// Events and players are created on first sight; one results row is written
// per sheet row. The whole import shares a single transaction.
package ingest
