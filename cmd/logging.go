package cmd

import (
	"github.com/urfave/cli"

	"github.com/richard-dennehy/gotracer/log"
)

var logger = log.New("gotracer")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
