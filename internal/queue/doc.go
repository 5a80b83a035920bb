// Package queue holds the ordered launch queue built during scanning.
package queue
