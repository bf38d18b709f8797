// Package list implements List, a doubly linked list.
//
// Nodes live in a single arena and refer to their neighbours by index, so the
// list holds no pointers between nodes. Slots of removed nodes are chained on
// a free list and reused by later pushes.
package list
