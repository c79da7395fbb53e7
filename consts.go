package blockmerge

// The buffer borrowed from the runs holds bufferBlocks*Z - bufferSlack
// elements: padding returns up to Z-1 of them to each run and Z must remain
// as merge scratch.
const (
	bufferBlocks = 3
	bufferSlack  = 2
)
