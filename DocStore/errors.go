package DocStore

import "errors"

var errNoClient = errors.New("document store not configured")
