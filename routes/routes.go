package routes

// Routing for the directory service.
//
// Layout:
// - api.go: API routes (/v1/*)
// - web.go: web routes (/, /docs, /status)
// - routes.go: this overview
//
// Usage:
// routes.SetupAllRoutes(router, controllers...)
