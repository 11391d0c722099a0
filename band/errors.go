// SPDX-License-Identifier: MIT

package band

import "errors"

// ErrBadScale indicates a scale whose bounds are not finite, non-negative
// and strictly ascending.
var ErrBadScale = errors.New("band: invalid scale")

// ErrUnknownBand is returned by Parse for unrecognized names.
var ErrUnknownBand = errors.New("band: unknown band")
