// Package session owns the client's authentication state.
//
// [Store] is the single source of truth for "am I logged in" and "who am I":
// a (token, user) pair held in memory and persisted to the local database.
// The pair is always both present or both absent; there is no partial
// session, in memory or on disk.
//
// [Policy] decides what the session means for HTTP traffic. It builds the
// [net/http.Client] that attaches the bearer credential to outgoing
// requests, rejects authenticated operations when no session exists, and
// classifies responses, tearing the session down on any observed 401.
//
// Session validity is a two-state machine, Anonymous and Authenticated.
// Anonymous to Authenticated happens only through a login response carrying
// both halves of the pair; the reverse happens through logout, account
// deletion, or a 401. Token expiry is discovered reactively through the
// next 401; no client-side expiry timers exist.
package session
