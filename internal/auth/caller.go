package auth

// Caller identifies the authenticated user behind a request. It is resolved
// once by the session middleware and passed explicitly into every operation;
// there is no ambient session state.
type Caller struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}
