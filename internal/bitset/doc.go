// Package bitset provides the dense presence bitmap used by arrays.
//
// The bitset is sized once at construction and never grows, so membership
// tests stay O(1) word lookups. PrevSetBit and NextSetBit scan a word at a
// time and back the max-index rescan and ascending traversal.
package bitset
