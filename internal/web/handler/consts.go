package handler

const (
	// RootPath is the root path of a route group.
	RootPath = "/"

	// ErrNilDepsFatalLogMsg is used if app, cfg or one of the collaborators is nil.
	ErrNilDepsFatalLogMsg = "app, cfg, accounts or registry is nil"
)
