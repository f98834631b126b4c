// Package services implements access to the movie catalog backend.
//
// [APIService] is the transport: it issues HTTP requests against named
// backend resources and returns an [APIResponse] carrying the status code,
// raw body, and whether the body parsed as JSON. It performs no session
// handling of its own.
//
// Session concerns are injected through the [SessionPolicy] interface,
// implemented by the session package: pre-flight authorization, bearer
// credential attachment, and response classification into a tagged [Outcome].
//
// [CatalogService] provides read-only access to movies, genres, and
// directors. Every call is a fresh remote fetch; nothing is cached locally.
// [AccountService] covers registration, login, profile edits, and account
// deletion, writing session state through the [SessionWriter] interface.
package services
