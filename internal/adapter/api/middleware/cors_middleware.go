package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// allowedHeaders lists every custom header the web client's storage
// library sends; dropping one breaks the browser preflight.
var allowedHeaders = []string{
	echo.HeaderAuthorization,
	echo.HeaderContentType,
	"x-client-info",
	"apikey",
	"x-supabase-client-platform",
	"x-supabase-client-platform-version",
	"x-supabase-client-runtime",
	"x-supabase-client-runtime-version",
}

// CORS permits cross-origin invocation from any browser context. The
// endpoint performs its own authorization, so an open origin list
// leaks nothing the policy does not already permit.
func CORS() echo.MiddlewareFunc {
	return echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: allowedHeaders,
	})
}
