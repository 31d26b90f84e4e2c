package domain

import "errors"

var (
	// ErrInsufficientCountries is returned when the catalog cannot fill the requested option count.
	ErrInsufficientCountries = errors.New("not enough countries to build a question")
	// ErrEmptyPool is returned when a random pick has nothing left to choose from.
	ErrEmptyPool = errors.New("no countries available to pick")
	// ErrInvalidToken indicates a share token could not be decoded or failed validation.
	ErrInvalidToken = errors.New("invalid share token")
	// ErrSessionNotFound is returned when a game session has not been started.
	ErrSessionNotFound = errors.New("game session not found")
	// ErrOptionNotFound indicates a submitted option is not part of the current question.
	ErrOptionNotFound = errors.New("option not found")
	// ErrCountryNotFound indicates a country code is not in the catalog.
	ErrCountryNotFound = errors.New("country not found")
	// ErrCatalogNotFound indicates the catalog could not be loaded.
	ErrCatalogNotFound = errors.New("catalog not found")
	// ErrSessionClosed is returned for actions on a session that has been torn down.
	ErrSessionClosed = errors.New("game session closed")
	// ErrWrongMode is returned for a multiple-choice answer in a free-text game.
	ErrWrongMode = errors.New("answer type not allowed in this game mode")
)
