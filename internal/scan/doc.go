// Package scan walks the prioritized autostart directories and fills the
// launch queue with admitted descriptors.
//
// Within a directory, files are visited in whatever order the listing
// yields; only the directory order itself is guaranteed. Admission
// decisions are per-file and order-independent, so this nondeterminism
// affects report ordering, not correctness.
package scan
