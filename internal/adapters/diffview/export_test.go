package diffview

import "io"

// SetLookPath replaces the executable lookup used by Compare.
func (v *Viewer) SetLookPath(fn func(string) (string, error)) {
	v.lookPath = fn
}

// SetOutput replaces the writers the comparison command streams to.
func (v *Viewer) SetOutput(stdout, stderr io.Writer) {
	v.stdout = stdout
	v.stderr = stderr
}
