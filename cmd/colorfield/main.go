package main

import (
	"os"

	"github.com/alexisbeaulieu97/colorfield/internal/logger"
)

func main() {
	os.Exit(run(newRootCmd(), logger.New(logger.Options{HumanReadable: true})))
}
