package routes

const (
	Health = "/health"

	AuthSendOtp       = "/public/auth/sendOtp"
	AuthLogin         = "/public/auth/login"
	AuthGoogle        = "/public/auth/google"
	AuthRegister      = "/api/register"
	AuthPasswordLogin = "/api/login"
	AuthRefresh       = "/public/auth/refresh"
	AuthLogout        = "/api/logout"

	Properties       = "/api/v1/properties"
	PropertyByID     = "/api/v1/properties/{id}"
	FeaturedProperty = "/api/v1/properties/featured"

	Listings = "/api/v1/listings"
)
