// cmd/genhash/main.go — Imprime el hash bcrypt de una password.
// Uso: go run ./cmd/genhash [-cost 12] <password>
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cost := flag.Int("cost", 12, "bcrypt cost")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "uso: genhash [-cost 12] <password>")
		os.Exit(2)
	}

	h, err := bcrypt.GenerateFromPassword([]byte(flag.Arg(0)), *cost)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(string(h))
}
