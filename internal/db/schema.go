package db

import _ "embed"

// Schema creates every table idempotently.
//
//go:embed schema.sql
var Schema string
