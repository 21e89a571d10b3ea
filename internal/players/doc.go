// Package players holds the player name model and the reconciliation matcher
// that flags stored players who are plausibly the same person as an incoming
// roster name.
//
// The matcher runs a fixed sequence of comparisons (case, accents, first-name
// containment within a shared last name) against a Lookup and labels every
// hit with the reason it matched. It keeps no state between calls.
package players
