package main

import (
	"github.com/lehigh-university-libraries/urnpubid/cmd"
)

func main() {
	cmd.Execute()
}
