// Package lessons holds the tutorial lessons and the registry the command
// line dispatches on. Each lesson writes its output to the given writer.
package lessons
