// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements SideSlip, a container that reveals a
// menu beside its main content. The menu opens and closes through
// horizontal slides or programmatically, with the main content
// shrinking and moving aside as the menu fades in.
//
// A SideSlip does not draw. It transforms three host provided
// Surfaces: the main content, the menu and a scrim that covers
// the visible part of the main content while the menu is open.
// Animations run on a host provided anim.Animator.
package widget
