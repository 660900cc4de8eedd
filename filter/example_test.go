// SPDX-License-Identifier: MIT

package filter_test

import (
	"fmt"

	"github.com/katalvlaran/ndcanny/filter"
	"github.com/katalvlaran/ndcanny/ndarray"
)

func ExampleSobel() {
	row := []float64{0, 0, 0, 1, 1, 1}
	img := ndarray.Must(ndarray.FromSlice(append(row, row...), 6, 2))
	g, err := filter.Sobel(img, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Select(1, 0).ToSlice())
	// Output: [-0.5 0 0.5 0.5 0 -0.5]
}
