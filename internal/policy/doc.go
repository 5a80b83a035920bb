// Package policy decides whether a parsed descriptor is queued for launch.
package policy
