package dbg

import petname "github.com/dustinkirkland/golang-petname"

// Random readable names, so that log lines from one filter run are easy to
// pick out from the next. These are for humans reading logs, not identifiers:
// collisions are possible and nothing should key on them.

func init() {
	// Make the names nondeterministic to remind the user that the same name
	// doesn't refer to the same thing between runs.
	petname.NonDeterministicMode()
}

// RunName returns a fresh name such as "brave-otter".
func RunName() string {
	return petname.Generate(2, "-")
}
