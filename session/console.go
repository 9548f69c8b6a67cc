// SPDX-License-Identifier: MIT

package session

import (
	"errors"
	"fmt"
)

// Entry is one console line and how many times it was reported in a row.
type Entry struct {
	Message string
	Count   int
}

func (e Entry) String() string {
	return fmt.Sprintf("%s (x%d)", e.Message, e.Count)
}

// Console is an append-only error log with run-length coalescing.
type Console struct {
	entries []Entry
}

// Report records err. Joined errors are recorded one line each.
func (c *Console) Report(err error) {
	if err == nil {
		return
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range j.Unwrap() {
			c.Report(e)
		}
		return
	}
	c.Print(err.Error())
}

// Print records a message, bumping the count if it repeats the last one.
func (c *Console) Print(msg string) {
	if n := len(c.entries); n > 0 && c.entries[n-1].Message == msg {
		c.entries[n-1].Count++
		return
	}
	c.entries = append(c.entries, Entry{Message: msg, Count: 1})
}

// Entries returns a copy of the log.
func (c *Console) Entries() []Entry { return append([]Entry(nil), c.entries...) }

// Len is the number of distinct entries.
func (c *Console) Len() int { return len(c.entries) }

// Clear empties the log.
func (c *Console) Clear() { c.entries = nil }

// Err joins every entry into one error, or nil when the log is empty.
func (c *Console) Err() error {
	errs := make([]error, len(c.entries))
	for i, e := range c.entries {
		errs[i] = errors.New(e.String())
	}

	return errors.Join(errs...)
}
