// Package domain defines the core types for event intake: seminar
// registrations and ticket orders.
//
// Types here carry no behavior beyond simple accessors and are shared by the
// service, repository, and API layers. Persistence lives in
// repository/postgres/.
package domain
