package gobrk

import "fmt"

import "github.com/bnclabs/golog"

var _ = fmt.Sprintf("dummy")

func init() {
	setts := map[string]interface{}{
		"log.level":      "error",
		"log.colorfatal": "red",
		"log.colorerror": "hired",
		"log.flags":      "lshortfile",
		"log.timeformat": "",
		"log.prefix":     "",
	}
	log.SetLogger(nil, setts)
	LogComponents("self")
}
