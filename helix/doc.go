// Package helix implements the request layer of the Twitch Helix API and the
// resource clients built on it.
//
// Client attaches one of two authorization schemes to each call:
//
//	core.AuthBearer   Authorization: <Token type, first letter upper-cased> <access token>
//	core.AuthClientID Client-ID: <client id>
//
// Every call returns a core.Result. Any response whose body decodes as JSON is
// a success, including 4xx/5xx responses: Twitch reports API errors inside
// the payload and callers inspect it themselves. Responses with an error
// status and no decodable body, and requests that never got a response, are
// reported as core.Failure values. The error return is reserved for misuse,
// such as a Bearer call made before SetToken (ErrNoToken).
//
// A Client is not safe for concurrent use when the token is replaced:
// SetToken swaps the reference without synchronization, so calls racing with
// it may observe either token. Serialize token updates, or use one Client per
// session.
//
// POST requests are sent with TLS certificate verification disabled unless
// core.Config.PostTLSVerify is set.
package helix
