// Package session persists the client-side state of a signed-in visitor:
// the session record, the bearer token, the favorite set and the listings
// cache. Values are stored as JSON documents in a metadata.Repository under
// fixed keys.
//
// Reads never fail. A missing key, an unreadable backend or a corrupt value
// all read as "absent" and are logged at warn level. Writes report their
// errors to the caller.
package session
