package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	RouteHome     = "/"
	RouteLogin    = "/login"
	RouteCallback = "/callback"
	RouteLogout   = "/logout"

	// API Routes
	RouteAPIProfile = "/api/profile"
)
