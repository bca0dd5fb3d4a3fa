package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"flowt.dev/flowt/internal/auth"
)

// CallerContextKey is where the resolved caller lives in the echo context.
const CallerContextKey = "caller"

// Session validates the session cookie on every request and refreshes it so
// activity keeps a session alive. Requests without a valid session are
// rejected; routes that allow anonymous access are registered outside this
// middleware.
func Session(codec *auth.SessionCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(auth.SessionCookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
			}

			caller, err := codec.Decode(cookie.Value)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
			}

			if token, expires, err := codec.Encode(caller); err == nil {
				c.SetCookie(&http.Cookie{
					Name:     auth.SessionCookieName,
					Value:    token,
					Expires:  expires,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(CallerContextKey, caller)
			return next(c)
		}
	}
}

// CallerFrom returns the authenticated caller stored by Session.
func CallerFrom(c echo.Context) auth.Caller {
	caller, _ := c.Get(CallerContextKey).(auth.Caller)
	return caller
}
