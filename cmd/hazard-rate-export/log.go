package main

import (
	"log"
)

var Prefix string

func init() {
	if Prefix != "" {
		log.SetPrefix(Prefix + " ")
	}
}
