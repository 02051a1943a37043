// Package identity holds taskhub's user records and their persistence boundary.
//
// Users are the security principals the auth core authenticates. The package
// exposes a single Store interface with two variants (Postgres, in-memory);
// the variant is chosen once at process start and injected into the session
// service, which never branches on storage kind.
package identity
