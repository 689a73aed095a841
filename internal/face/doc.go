// Package face maps wall-clock time onto the hands of a 12-hour analog
// clock face.
//
// Clock-face angles grow clockwise from 12 o'clock. Screen angles follow the
// trigonometric convention: counter-clockwise from the positive x-axis. The
// projection targets raster coordinates where y grows downward.
package face
