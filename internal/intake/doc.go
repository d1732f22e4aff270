// Package intake implements the registration and ticket-order intake flow.
//
// The service layer validates submissions, commits them through the
// Repository contract, and triggers the decoupled side effects (confirmation
// email, order sync). It depends only on interfaces defined in this package
// and should never import from api/ or repository/postgres/.
package intake
