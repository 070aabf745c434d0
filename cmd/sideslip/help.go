// SPDX-License-Identifier: Unlicense OR MIT

package main

const mainUsage = `The sideslip command demonstrates a side panel in the terminal.

Usage:

	sideslip [flags]

Drag the main content sideways with the mouse to reveal the menu, or use the
keys listed at the bottom of the screen. Releasing a drag past half of the
open distance opens the menu; anything less closes it. Clicking the dimmed
main content closes an open menu.

The -config flag specifies a TOML configuration file. Without it, the file
named by $SIDESLIP_CONFIG is read, then config.toml in the sideslip directory
of the user configuration directory. Every setting can be overridden by an
environment variable with the SIDESLIP_ prefix, such as SIDESLIP_SCALE, and by
the flags below.

The -direction flag selects the side of the menu, left or right.

The -scale flag specifies the scale of the main content while the menu is
open, in the range (0, 1].

The -offset flag specifies the distance the main content moves when the menu
opens. The default is two thirds of the window width.

The -log flag specifies a file for log output. The terminal is used by the
demo, so nothing is logged without it.

The -png flag renders the open menu to a PNG file and exits. The -frames
flag renders every frame of the opening animation as PNG files in a directory
and exits. Both use a window of -size pixels, and written images are scaled
by -framescale.
`
