// Package routepath centralizes web route constants.
package routepath

const (
	Home = "/"

	ExplorePrefix = "/explore"
	ExploreFilter = "/explore/filter"

	AuthPrefix = "/api/auth/"
	AuthLogin  = "/api/auth/login"
	AuthVerify = "/api/auth/verify"
	AuthLogout = "/api/auth/logout"

	StaticPrefix = "/static/"
)
