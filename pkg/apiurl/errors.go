package apiurl

import "errors"

// ErrNoURL is returned by Client when a path resolves to no URL.
var ErrNoURL = errors.New("path resolves to no url")
