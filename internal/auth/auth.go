package auth

type Scope string
type Header string

const (
	Admin       Scope  = "newsletters/admin"
	Editor      Scope  = "newsletters/editor"
	Service     Scope  = "newsletters/service"
	UserHeader  Header = "X-User-Id"
	ScopeHeader Header = "X-User-Scope"
)
