// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrUnsupportedBitrate is returned by Encode for any bitrate other
// than SupportedBitrate.
var ErrUnsupportedBitrate = errors.New("mp3: unsupported bitrate")
