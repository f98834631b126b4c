// Package models defines the data model for the flick movie catalog client.
//
// The package contains two categories of types:
//
// 1. Catalog value objects, retrieved fresh from the backend and never
// persisted locally:
//   - [Movie] : A catalog entry with embedded genre and director metadata
//   - [Genre] : Genre name and description
//   - [Director] : Director biography
//
// 2. Session records, owned by the session store and persisted to the local
// database between runs:
//   - [User] : The authenticated user's profile including favorite movie titles
//   - [LoginResponse] : The token/user pair returned by a successful login
//
// All response bodies decode into closed structs so that malformed backend
// responses surface as decoding failures rather than silently missing fields.
package models
