// Package gobrk implements a first-fit heap allocator over a single
// contiguous region of address space, in the manner of the classic
// sbrk(2) based malloc, with a limited scope:
//
//   - The region is reserved up front and a break pointer moves
//     forward and backward inside it as blocks are carved and
//     released.
//   - Every carved block is preceded by a fixed-layout header
//     carrying its payload size, free flag and a link to the next
//     header in carve order.
//   - Free blocks are reused first-fit: the earliest free block
//     large enough wins, and oversized blocks are never split.
//     Adjacent free blocks are never coalesced.
//   - Memory is returned to the region only when the released block
//     is the last byte range before the break; otherwise the block
//     is kept and marked reusable.
//   - A single process-wide mutex serializes Malloc and Free. Calloc
//     and Realloc compose them and do not hold the mutex across
//     their own multi-step logic.
//
// Allocators are explicit objects created with New; multiple
// independent instances can coexist, each owning its region.
package gobrk
