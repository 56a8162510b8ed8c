// Package format enumerates the document formats the shape tools read and
// write.
package format
