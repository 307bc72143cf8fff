// Package services contains the application services of the myFlix client:
// account and session management, the cached movie catalog, and favorites
// synchronization. Services call the API client, reconcile the local session
// store with server responses, and report outcomes to the UI collaborators.
package services

// Route identifies a UI destination. Services only signal where to go after
// session-changing operations; performing the navigation is the UI's job.
type Route string

const (
	RouteWelcome Route = "welcome"
	RouteMovies  Route = "movieslist"
	RouteUsers   Route = "users"
	RouteLogin   Route = "login"
)

// Router receives navigation signals from the services.
type Router interface {
	Navigate(route Route)
}

// Notifier receives short-lived success messages after mutating operations.
// Failures are not pushed here; they are returned to the caller, which
// decides how to display them.
type Notifier interface {
	Notify(msg string)
}

// NopRouter and NopNotifier are safe defaults for contexts (tests, scripts)
// that do not care about UI signals.
type NopRouter struct{}

func (NopRouter) Navigate(Route) {}

type NopNotifier struct{}

func (NopNotifier) Notify(string) {}
