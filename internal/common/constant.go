// Package common contains shared constants and sentinel errors used across
// the work journal server and CLI.
package common

// DateFormat is the calendar-date layout used for entry dates and week keys.
const DateFormat = "2006-01-02"

// FetchHeaderName marks requests sent by the page script instead of a plain
// form submission. Such requests get JSON back rather than a redirect.
const FetchHeaderName = "X-Requested-With"

// FetchHeaderValue is the value journal.js sends in FetchHeaderName.
const FetchHeaderValue = "fetch"
