// SPDX-License-Identifier: MIT

package walk

import (
	"bufio"
	"io"
	"strings"
)

// WriteCorpus writes one line per walk with space-separated node tokens,
// the input format of skip-gram style trainers. IDs containing whitespace
// are written verbatim and will split into several tokens downstream.
func WriteCorpus(out io.Writer, walks []Walk) error {
	bw := bufio.NewWriter(out)
	for _, w := range walks {
		if _, err := bw.WriteString(strings.Join(w.Tokens(), " ")); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
