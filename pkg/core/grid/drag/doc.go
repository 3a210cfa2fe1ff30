// Package drag implements the drag-and-drop state machine.
//
// A [Controller] is either idle or running one drag session. A session
// starts when the host picks an item up, follows the pointer while it
// moves, and ends with a drop or a cancel.
//
// # Reordering
//
// While the pointer moves the controller computes where the dragged item
// would land in the container under the pointer (the hover container):
//
//  1. The hover container is laid out without the dragged item. The
//     resulting cells are the anchors.
//  2. The pointer is translated into the hover container and shifted by
//     half a column width and half the item height, giving the center of
//     the dragged item.
//  3. Among anchors strictly above and to the left of that center, the
//     nearest one by Euclidean distance is the intended anchor (the first
//     one when none qualifies).
//  4. The item is inserted before the intended anchor, or after it when
//     it is the last anchor and the pointer is below its vertical
//     midpoint.
//
// Reordering is rate limited by a [schedule.Scheduler]; the cursor-following
// ghost position is sent to the host on every move.
package drag
