package model

import "github.com/m-mizutani/goerr/v2"

// Error tags for categorization of fatal report failures
var (
	TagInputNotFound = goerr.NewTag("input_not_found")
	TagParse         = goerr.NewTag("parse_error")
	TagOutputWrite   = goerr.NewTag("output_write_error")
	TagInvalidConfig = goerr.NewTag("invalid_config")
)

// Sentinel errors for report lifecycle
var (
	ErrAlreadyLoaded = goerr.New("report is already loaded")
	ErrNotLoaded     = goerr.New("report is not loaded")
)
