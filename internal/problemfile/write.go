package problemfile

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/vk/mklandgo/internal/fsutil"
	"github.com/vk/mklandgo/internal/landscape"
)

// Write emits the canonical plain-text form of a problem, overwriting any
// existing file at path. Parent directories must already exist; that is the
// orchestrator's responsibility.
//
// Line structure:
//
//	m k o b
//	<global optimum score>
//	<number of global optimum strings>
//	<one bit-string per optimum, problem-size digits, no separators>
//	<m lines of k space-separated variable indices>
func Write(p landscape.Problem, path string) error {
	return fsutil.WriteFile(path, func(w *bufio.Writer) error {
		fmt.Fprintf(w, "%d %d %d %d\n", p.Params.M, p.Params.K, p.Params.O, p.Params.B)
		fmt.Fprintln(w, strconv.FormatFloat(p.GlobOptimaScore, 'g', -1, 64))
		fmt.Fprintln(w, len(p.GlobOptima))
		for _, optimum := range p.GlobOptima {
			fmt.Fprintln(w, optimum)
		}
		for _, clique := range p.Cliques {
			for j, v := range clique {
				if j > 0 {
					w.WriteByte(' ')
				}
				w.WriteString(strconv.Itoa(v))
			}
			w.WriteByte('\n')
		}
		return nil
	})
}
