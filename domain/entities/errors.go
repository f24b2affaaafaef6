package entities

import "errors"

var (
	// ErrUnknownLabel means a gender/hobby label is missing from the fixed mapping.
	// It is a programming error in the calling scenario.
	ErrUnknownLabel = errors.New("unknown label")

	// ErrTimeout means an expected UI condition did not hold before its deadline
	ErrTimeout = errors.New("condition not met before timeout")

	// ErrNoElement means a locator resolved to nothing when an action needed a target
	ErrNoElement = errors.New("no element matches locator")

	// ErrClickIntercepted means another element received the click
	ErrClickIntercepted = errors.New("click intercepted by another element")

	// ErrNavigation means the target page could not be opened
	ErrNavigation = errors.New("navigation failed")
)
