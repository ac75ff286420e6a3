package middleware

import "github.com/lestrrat-go/accesslog"

// AccessLog returns a `github.com/lestrrat-go/accesslog` middleware as an
// Interface, so it can be used next to middleware created by Adapt.
func AccessLog() Interface {
	return accesslog.New()
}
