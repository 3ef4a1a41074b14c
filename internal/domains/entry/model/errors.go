package model

import "errors"

var ErrEntryNotFound = errors.New("entry not found")
