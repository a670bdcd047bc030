// Package content turns documents from the content store into the view
// models rendered by the site.
//
// The Aggregator issues one query per page, validates the raw records at the
// store boundary and fills every missing field with its fallback. Store
// failures never reach the pages as errors on the homepage or the blog
// listing; only the post detail lookup distinguishes "not found" from
// "unavailable".
package content
