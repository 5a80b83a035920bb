// Package launch drains the launch queue with the staggered-delay policy
// and creates one detached child process per admitted descriptor.
//
// The launcher only confirms process creation. It never waits for a child
// beyond opportunistic reaping and never tracks exit status.
package launch
