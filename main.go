package main

import (
	"os"

	"github.com/GoMySQL-Admin/GoMySQL-Admin/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
