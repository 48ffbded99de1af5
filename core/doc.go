// Package core holds the shared Twitch client contracts: configuration, the
// transport seam, ordered form values, and the normalized request result.
// It must not depend on helix, oauth or any transport implementation.
package core
