package asynclog

// ResetInstalled clears the process-wide sink between tests.
func ResetInstalled() {
	installed.Store(nil)
}
