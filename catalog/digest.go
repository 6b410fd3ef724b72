// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package catalog

import (
	"encoding/hex"
	"strconv"

	"github.com/mdhender/svgicons/renderer"
	"golang.org/x/crypto/blake2b"
)

// Digest returns a hex blake2b-256 digest of the icon's geometry and family
// settings. Two icons with the same digest render identically.
func (i Icon) Digest() string {
	var buf []byte
	buf = append(buf, i.Name...)
	buf = append(buf, 0)
	buf = strconv.AppendFloat(buf, i.StrokeWidth, 'g', -1, 64)
	buf = append(buf, 0)
	buf = strconv.AppendUint(buf, uint64(i.Omit), 10)
	buf = appendNodes(buf, i.Nodes)
	sum := blake2b.Sum256(buf)
	return hex.EncodeToString(sum[:])
}

func appendNodes(buf []byte, nodes []renderer.Node) []byte {
	for _, node := range nodes {
		buf = append(buf, '(')
		buf = append(buf, string(node.Tag)...)
		for _, attr := range node.Attrs {
			buf = append(buf, ' ')
			buf = append(buf, attr.Name...)
			buf = append(buf, '=')
			buf = strconv.AppendQuote(buf, renderer.FormatValue(attr.Value))
		}
		if len(node.Children) != 0 {
			buf = appendNodes(buf, node.Children)
		} else if node.Text != "" {
			buf = strconv.AppendQuote(buf, node.Text)
		}
		buf = append(buf, ')')
	}
	return buf
}
