package project

import "errors"

var (
	ErrProjectRequired = errors.New("project: project is required")
	ErrPageNotFound    = errors.New("project: page not found")
	ErrSectionNotFound = errors.New("project: section not found")
)
