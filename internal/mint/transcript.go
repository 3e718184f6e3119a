// transcript.go - Transcript wire encoding.
//
// Every transcript element is a 32-byte big-endian word, rendered as a
// 0x-prefixed 64-hex-digit string: rows of (kBar, aBar, gamma.x, gamma.y,
// sigma.x, sigma.y) plus the challenge. This is the boundary artifact handed
// to an external verifier.

package mint

import (
	"encoding/hex"
	"encoding/json"
	"math/big"
)

func hexWord(b [32]byte) string {
	return "0x" + hex.EncodeToString(b[:])
}

func coordWord(v *big.Int) string {
	var b [32]byte
	v.FillBytes(b[:])
	return hexWord(b)
}

// Data returns the transcript rows as hex words in wire order.
func (p *Proof) Data() [][6]string {
	out := make([][6]string, len(p.Rows))
	for i := range p.Rows {
		r := &p.Rows[i]
		out[i] = [6]string{
			hexWord(r.KBar.Bytes()),
			hexWord(r.ABar.Bytes()),
			coordWord(r.Gamma.X),
			coordWord(r.Gamma.Y),
			coordWord(r.Sigma.X),
			coordWord(r.Sigma.Y),
		}
	}
	return out
}

// ChallengeHex returns the challenge as a 0x-prefixed 64-hex-digit scalar.
func (p *Proof) ChallengeHex() string {
	return hexWord(p.Challenge.Bytes())
}

// MarshalJSON renders the transcript in its wire form.
func (p *Proof) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Data      [][6]string `json:"data"`
		Challenge string      `json:"challenge"`
	}{
		Data:      p.Data(),
		Challenge: p.ChallengeHex(),
	})
}
