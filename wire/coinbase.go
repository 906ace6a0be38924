package wire

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// maxCoinbaseHeightLen is the maximum number of bytes the serialized height
// push at the start of a coinbase signature script may occupy.
const maxCoinbaseHeightLen = 8

// ErrBadCoinbaseScript indicates that a coinbase signature script does not
// begin with a well-formed serialized height push.
var ErrBadCoinbaseScript = errors.New("malformed coinbase signature script")

// StandardCoinbaseScript builds a coinbase signature script carrying the
// given block height followed by the opaque extra data. The height is
// encoded as a single-byte push of its minimal little-endian representation.
func StandardCoinbaseScript(height uint64, extraData []byte) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], height)

	heightLen := 1
	for i := 7; i > 0; i-- {
		if buf[i] != 0 {
			heightLen = i + 1
			break
		}
	}

	script := make([]byte, 0, 1+heightLen+len(extraData))
	script = append(script, byte(heightLen))
	script = append(script, buf[:heightLen]...)
	script = append(script, extraData...)
	return script
}

// ParseCoinbaseScript splits a coinbase signature script built by
// StandardCoinbaseScript back into the block height and the opaque extra
// data that follows the height push.
func ParseCoinbaseScript(script []byte) (height uint64, extraData []byte, err error) {
	if len(script) == 0 {
		return 0, nil, errors.Wrap(ErrBadCoinbaseScript, "empty script")
	}

	heightLen := int(script[0])
	if heightLen == 0 || heightLen > maxCoinbaseHeightLen {
		return 0, nil, errors.Wrapf(ErrBadCoinbaseScript, "invalid height push length %d", heightLen)
	}
	if len(script) < 1+heightLen {
		return 0, nil, errors.Wrapf(ErrBadCoinbaseScript, "script too short for height push of %d bytes", heightLen)
	}

	var buf [8]byte
	copy(buf[:], script[1:1+heightLen])
	height = binary.LittleEndian.Uint64(buf[:])

	extraData = script[1+heightLen:]
	return height, extraData, nil
}
