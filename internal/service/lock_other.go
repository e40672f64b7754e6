//go:build !unix && !windows

package service

import "os"

// No advisory locking on this platform; appends are serialized in-process only.
func lockFile(*os.File) error   { return nil }
func unlockFile(*os.File) error { return nil }
