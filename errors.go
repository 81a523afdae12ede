package gobrk

import "errors"

// ErrorOutofMemory region cannot be extended to satisfy the request.
var ErrorOutofMemory = errors.New("brk.outofmemory")

// ErrorReleased region already released back to the OS.
var ErrorReleased = errors.New("brk.released")
