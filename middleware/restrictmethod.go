package middleware

import (
	"net/http"

	"github.com/lestrrat-go/middlewrap"
)

// RestrictMethod returns a new middleware that restricts the HTTP method
// to the handler(s) downstream. If the method does not match, it will return
// a 405 Method Not Allowed error
func RestrictMethod(method string) Interface {
	return Adapt(middlewrap.Of[*http.Request, http.ResponseWriter](func(r *http.Request, _ http.ResponseWriter) error {
		if r.Method != method {
			return Status(http.StatusMethodNotAllowed)
		}
		return nil
	}))
}
