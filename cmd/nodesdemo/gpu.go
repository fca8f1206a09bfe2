//go:build gpu

package main

// Building with -tags gpu registers the gg GPU accelerator for raster
// output.
import _ "github.com/gogpu/gg/gpu"
