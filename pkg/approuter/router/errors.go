package router

import "errors"

var (
	// ErrUnknownPresentation is returned when parsing text that names no presentation.
	ErrUnknownPresentation = errors.New("router: unknown presentation")

	// ErrUnknownTabBehavior is returned when parsing text that names no tab behavior.
	ErrUnknownTabBehavior = errors.New("router: unknown tab behavior")

	// ErrNoStackRouterFactory is returned by NewTabRouter when the config
	// cannot create stack routers for its tabs.
	ErrNoStackRouterFactory = errors.New("router: no stack router factory set")
)
