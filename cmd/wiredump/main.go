package main

import (
	"github.com/zhicwu/mariadb-wire/internal/cli"
)

func main() {
	cli.Execute()
}
