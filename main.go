package main

import (
	"github/chapool/tx-signer/cmd"
)

func main() {
	cmd.Execute()
}
