// Package buffer provides the element storage behind a knife queue.
//
// Two backends satisfy one Buffer contract:
//
//   - Eager: a doubly linked deque with O(1) pushes and pops at both ends,
//     O(1) length and Rotate. Positional edits rotate the target to the
//     front, act there and rotate back.
//   - Lazy: a cursor over a shared, reference-counted tee of an iterator.
//     Appends compose iterators instead of materialising them, Fork hands
//     out an independent cursor over the unconsumed tail, and Len counts a
//     fork so the buffer itself is left untouched.
//
// Both backends produce identical contents, order and exhaustion semantics.
package buffer
