// Package identity carries the authenticated caller of an API request.
//
// The bearer middleware builds an Identity from the verified token claims
// and stores it in the request context:
//
//	id := identity.FromClaims(claims).WithRemoteIP(ip)
//	ctx = identity.Set(ctx, id)
//
// Handlers read it back with Get. Requests served without an API secret
// configured carry no Identity, and Subject reports "anonymous" for them.
package identity
