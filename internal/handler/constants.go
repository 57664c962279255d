package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the root path.
	RouteRoot = "/"
	// RouteExplore is the public event listing with search.
	RouteExplore = "/explore"
	// RouteRegister is the public participant registration page.
	RouteRegister = "/register"
	// RouteLogin is the admin login page.
	RouteLogin = "/login"
	// RouteSignup is the admin signup page.
	RouteSignup = "/signup"
	// RouteLogout destroys the admin session.
	RouteLogout = "/logout"
	// RouteTheme toggles the dark mode preference.
	RouteTheme = "/theme"
	// RouteHealth is the health check endpoint.
	RouteHealth = "/health"

	// RouteAdmin is the organizer dashboard.
	RouteAdmin = "/admin"
	// RouteAdminEventNew renders the create-event form.
	RouteAdminEventNew = "/admin/events/new"
	// RouteAdminEvents receives the create-event submission.
	RouteAdminEvents = "/admin/events"
	// RouteAdminStream is the dashboard change notification stream.
	RouteAdminStream = "/admin/stream"
)
