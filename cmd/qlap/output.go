// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/qlap/internal/config"
	"github.com/katalvlaran/qlap/service"
)

// kernelJSON is the JSON layout of a kernel: the 2×E edge index plus the
// four aligned weight vectors.
type kernelJSON struct {
	NumNodes      int       `json:"num_nodes"`
	LambdaMax     float32   `json:"lambda_max"`
	EdgeIndex     [2][]int  `json:"edge_index"`
	Real          []float32 `json:"real"`
	ImagI         []float32 `json:"i"`
	ImagJ         []float32 `json:"j"`
	ImagK         []float32 `json:"k"`
	Blocks        [5]int    `json:"block_offsets"`
	SelfLoopStart int       `json:"self_loop_start"`
}

func writeKernel(w io.Writer, format string, res *service.Result) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(w, res)
	case config.FormatCSV:
		return writeCSV(w, res)
	default:
		return fmt.Errorf("format %q: %w", format, config.ErrInvalid)
	}
}

func writeJSON(w io.Writer, res *service.Result) error {
	k := res.Kernel
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(kernelJSON{
		NumNodes:      k.NumNodes,
		LambdaMax:     res.LambdaMax,
		EdgeIndex:     k.EdgeIndex(),
		Real:          k.Real,
		ImagI:         k.ImagI,
		ImagJ:         k.ImagJ,
		ImagK:         k.ImagK,
		Blocks:        k.Offsets,
		SelfLoopStart: k.LoopStart,
	})
}

// writeCSV emits one "src,dst,real,i,j,k" row per coordinate.
func writeCSV(w io.Writer, res *service.Result) error {
	k := res.Kernel
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"src", "dst", "real", "i", "j", "k"}); err != nil {
		return err
	}
	f := func(v float32) string { return strconv.FormatFloat(float64(v), 'g', -1, 32) }
	for p := range k.Src {
		row := []string{
			strconv.Itoa(k.Src[p]), strconv.Itoa(k.Dst[p]),
			f(k.Real[p]), f(k.ImagI[p]), f(k.ImagJ[p]), f(k.ImagK[p]),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
