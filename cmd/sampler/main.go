package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/term"

	"vela"
)

// sampler renders one frame of each view primitive straight to stdout,
// sized to the terminal. No event loop; run it to eyeball layout output.

func main() {
	width, height := 60, 14
	if term.IsTerminal(int(os.Stdout.Fd())) {
		w, h, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			log.Fatal(err)
		}
		width, height = w, h-2
	}

	display := vela.NewDisplay(width, height)
	buf := display.FrameAt(sampleView(width), time.Second)

	// Frame the sample so border merging is visible too.
	buf.DrawBorder(0, 0, width, height, vela.BorderRounded, vela.DefaultStyle())
	fmt.Println(buf.ANSI())
}

func sampleView(width int) vela.View {
	font := vela.TerminalFont{}

	items := []string{"first", "second", "third"}
	rows, err := vela.ForEach(items, func(s string) vela.View {
		return vela.NewHStack(
			vela.NewText("- ", font),
			vela.NewText(s, font),
			vela.NewSpacer(),
		)
	})
	if err != nil {
		log.Fatal(err)
	}

	gauge := vela.NewHStack(
		vela.NewText("gauge", font),
		vela.NewSpacer().WithMinLength(1),
		vela.ForegroundColor(vela.NewBlock('▮'), vela.Green),
		vela.NewFixedFrame(vela.ForegroundColor(vela.NewBlock('▯'), vela.BrightBlack)).
			WithWidth(vela.Dimension(width/4)).WithHeight(1),
	)

	return vela.NewPadding(
		vela.NewVStack(
			vela.ForegroundColor(
				vela.NewText("vela sampler", font).WithAlignment(vela.HCenter),
				vela.BrightWhite,
			),
			vela.NewDivider(),
			rows,
			vela.NewDivider(),
			vela.NewFixedFrame(gauge).WithHeight(1),
			vela.NewSpacer(),
			vela.NewText("wrapping: the quick brown fox jumps over the lazy dog", font),
		).WithSpacing(1),
		2,
	)
}
