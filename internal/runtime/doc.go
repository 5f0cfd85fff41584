/*
Package runtime implements the traversal and presentation controller.

The Controller walks the story graph one user event at a time: entering a node
records a path entry, a node with choices is presented for reading, and a node
without choices ends the traversal with a summary of the path taken.
*/
package runtime
