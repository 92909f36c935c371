package main

import (
	"fmt"
	"os"
)

func main() {
	fh, err := os.Create("base10k.txt")
	if err != nil {
		panic(err)
	}
	for i := 0; i < 10000; i++ {
		fmt.Fprintf(fh, "%04d", i)
	}
}
