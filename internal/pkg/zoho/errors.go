package zoho

import "fmt"

// AuthRefreshError reports a rejected refresh-token exchange. It is fatal for
// the in-flight webhook; the exchange itself is never retried.
type AuthRefreshError struct {
	Status int
	Body   string
}

func (e *AuthRefreshError) Error() string {
	return fmt.Sprintf("zoho token refresh rejected: status=%d body=%s", e.Status, e.Body)
}

// APIRequestError carries the provider status and body of a failed Zoho Books
// call for diagnostics.
type APIRequestError struct {
	Method string
	URL    string
	Status int
	Body   string
}

func (e *APIRequestError) Error() string {
	return fmt.Sprintf("zoho api request failed: %s %s status=%d body=%s", e.Method, e.URL, e.Status, e.Body)
}
