// Package chaptersdk is a Go client for the chapter membership service.
//
// It covers the public intake and signup endpoints, member operations and
// the admin surface. Authenticated calls carry the session token from Login
// as a bearer token, mirroring what the web frontend does with the session
// cookie.
package chaptersdk
