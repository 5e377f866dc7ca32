package apiclient

import "net/http"

// sessionCookieName matches the cookie the backend issues on login.
const sessionCookieName = "session"

// SessionToken returns the session token currently held by the cookie
// jar, or "" when not logged in. Callers can persist it across
// processes and restore it with SetSessionToken.
func (c *Client) SessionToken() string {
	for _, cookie := range c.httpClient.Jar.Cookies(c.baseURL) {
		if cookie.Name == sessionCookieName {
			return cookie.Value
		}
	}
	return ""
}

// SetSessionToken seeds the cookie jar with a previously saved session
// token. An empty token is ignored.
func (c *Client) SetSessionToken(token string) {
	if token == "" {
		return
	}
	c.httpClient.Jar.SetCookies(c.baseURL, []*http.Cookie{{
		Name:  sessionCookieName,
		Value: token,
		Path:  "/",
	}})
}
