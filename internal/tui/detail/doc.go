// Package detail renders the single-user detail card shown when a row of the
// listing is opened.
package detail
