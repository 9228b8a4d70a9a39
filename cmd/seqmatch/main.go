// Command seqmatch compares nucleotide sequences from the command line.
package main

import "github.com/katalvlaran/seqmatch/cmd"

func main() {
	cmd.Execute()
}
