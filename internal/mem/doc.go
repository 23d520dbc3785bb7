// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Row buffers start on a cache line so that small rows never share one.
package mem
