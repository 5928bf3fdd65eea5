// Package api implements the JSON HTTP surface of passforge.
//
// HTTP API
//
//	POST /harden
//	    Derive the three password variants from {password, house_name,
//	    phone_suffix, core_memory, handle_name, birthday_token, custom,
//	    iterations?}. Responds with the variants, per-variant entropy,
//	    strength analyses of the original and the medium variant, and the
//	    derivation parameters (algorithm, iterations, salt).
//
//	POST /analyze
//	    Full strength report for {password}: entropy, crack-time estimate,
//	    rating and character-class flags.
//
//	POST /verify
//	    Recompute the derivation for {password, metadata fields, salt,
//	    iterations?} and compare against {stored} in constant time.
//	    Responds {"match": true|false}.
//
// Behaviour
//
//   - Requests and responses are JSON. Requests must carry an
//     application/json Content-Type; anything else is rejected with 415.
//   - Errors carry {"error": "..."}: 4xx for bad requests, 500 when the
//     derivation itself fails.
//   - Client-supplied iteration counts are capped at MaxIterations; absent
//     or zero means the default work factor.
//   - The server is stateless; nothing is persisted.
//   - A lightweight access log records method, path, remote, status and
//     duration for each request.
package api
